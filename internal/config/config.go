package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/musical-chairs/internal/apperrors"
)

// 默认值
const (
	defaultPlayers       = 4
	defaultMusicMinMs    = 1000
	defaultMusicMaxMs    = 3000
	defaultSettleMs      = 500
	defaultResumePauseMs = 1000
	defaultLogLevel      = "info"
	defaultSoundDir      = "assets/sounds"
	defaultSoundTrack    = "music"
)

// Config 程序配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Log   LogConfig   `yaml:"log"`
	Sound SoundConfig `yaml:"sound"`
}

// GameConfig 游戏配置
type GameConfig struct {
	Players       int `yaml:"players"`         // 玩家人数（≥2）
	MusicMinMs    int `yaml:"music_min_ms"`    // 音乐最短播放时间（毫秒）
	MusicMaxMs    int `yaml:"music_max_ms"`    // 音乐最长播放时间（毫秒）
	SettleMs      int `yaml:"settle_ms"`       // 音乐停止后抢座时间（毫秒）
	ResumePauseMs int `yaml:"resume_pause_ms"` // 回合间隔（毫秒）
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  bool   `yaml:"file"` // 写入 ~/.musical-chairs/debug.log 而不是 stderr
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Track   string `yaml:"track"` // 循环播放的音乐文件名（不含扩展名）
}

// MusicMinDuration 返回音乐最短播放时长
func (c *GameConfig) MusicMinDuration() time.Duration {
	return time.Duration(c.MusicMinMs) * time.Millisecond
}

// MusicMaxDuration 返回音乐最长播放时长
func (c *GameConfig) MusicMaxDuration() time.Duration {
	return time.Duration(c.MusicMaxMs) * time.Millisecond
}

// SettleDuration 返回抢座时长
func (c *GameConfig) SettleDuration() time.Duration {
	return time.Duration(c.SettleMs) * time.Millisecond
}

// ResumePauseDuration 返回回合间隔
func (c *GameConfig) ResumePauseDuration() time.Duration {
	return time.Duration(c.ResumePauseMs) * time.Millisecond
}

// Load 加载配置文件，环境变量优先于文件
//
// Defaults are filled in before the file is decoded, so an explicit 0 in
// the file (e.g. settle_ms: 0) is kept.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(cfg)

	return cfg, nil
}

// Default 返回默认配置（同样应用环境变量）
func Default() *Config {
	cfg := defaults()
	applyEnv(cfg)
	return cfg
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Game.Players < 2 {
		return apperrors.ErrTooFewPlayers
	}
	if c.Game.MusicMinMs < 0 || c.Game.MusicMaxMs < c.Game.MusicMinMs {
		return apperrors.ErrInvalidDelayRange
	}
	if c.Game.SettleMs < 0 || c.Game.ResumePauseMs < 0 {
		return apperrors.ErrInvalidSettleDelay
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Players:       defaultPlayers,
			MusicMinMs:    defaultMusicMinMs,
			MusicMaxMs:    defaultMusicMaxMs,
			SettleMs:      defaultSettleMs,
			ResumePauseMs: defaultResumePauseMs,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
		Sound: SoundConfig{
			Dir:   defaultSoundDir,
			Track: defaultSoundTrack,
		},
	}
}

func applyEnv(cfg *Config) {
	envInt("GAME_PLAYERS", &cfg.Game.Players)
	envInt("GAME_MUSIC_MIN_MS", &cfg.Game.MusicMinMs)
	envInt("GAME_MUSIC_MAX_MS", &cfg.Game.MusicMaxMs)
	envInt("GAME_SETTLE_MS", &cfg.Game.SettleMs)
	envInt("GAME_RESUME_PAUSE_MS", &cfg.Game.ResumePauseMs)
	envString("LOG_LEVEL", &cfg.Log.Level)
	envBool("LOG_FILE", &cfg.Log.File)
	envBool("SOUND_ENABLED", &cfg.Sound.Enabled)
	envString("SOUND_DIR", &cfg.Sound.Dir)
	envString("SOUND_TRACK", &cfg.Sound.Track)
}

func envString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
