package apperrors

// 错误码
const (
	CodeTooFewPlayers      = 1001
	CodeInvalidDelayRange  = 1002
	CodeInvalidSettleDelay = 1003
	CodeNoEliminee         = 2001
	CodeMultipleEliminees  = 2002
)

// GameError 游戏错误（配置校验和回合异常共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrTooFewPlayers      = &GameError{Code: CodeTooFewPlayers, Message: "at least 2 players are required"}
	ErrInvalidDelayRange  = &GameError{Code: CodeInvalidDelayRange, Message: "music delay range is invalid"}
	ErrInvalidSettleDelay = &GameError{Code: CodeInvalidSettleDelay, Message: "settle delay must not be negative"}

	// Round anomalies are logged and recovered, never returned to callers of Run.
	ErrNoEliminee        = &GameError{Code: CodeNoEliminee, Message: "every active player claimed a seat"}
	ErrMultipleEliminees = &GameError{Code: CodeMultipleEliminees, Message: "more than one active player missed a seat"}
)
