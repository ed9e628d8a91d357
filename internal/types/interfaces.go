package types

import "time"

// Reporter 回合事件的外部接收者（控制台、测试记录器等）
type Reporter interface {
	RoundStarted(ev RoundStart)
	RoundSettled(ev RoundResult)
	GameOver(ev GameResult)
}

// Music 播放"音乐"的协作者，音乐停止即开始抢座
type Music interface {
	Start()
	Stop()
	Play(cue string)
}

// Delayer 提供每回合音乐播放的随机时长
type Delayer interface {
	Next() time.Duration
}
