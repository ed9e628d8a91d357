//go:build ci

package sound

type MusicPlayer struct{}

func NewMusicPlayer(dir, track string, cues ...string) *MusicPlayer {
	return &MusicPlayer{}
}

func (mp *MusicPlayer) Init() error {
	return nil
}

func (mp *MusicPlayer) Start() {
	// No-op
}

func (mp *MusicPlayer) Stop() {
	// No-op
}

func (mp *MusicPlayer) Play(name string) {
	// No-op
}

func (mp *MusicPlayer) Close() {
	// No-op
}
