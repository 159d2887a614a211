package assistant

// playback is the single active playback handle. Starting a new source
// supersedes the previous handle immediately.
type playback struct {
	src     string
	playing bool
}

// PlaybackView is the externally visible playback state.
type PlaybackView struct {
	Src     string `json:"src,omitempty"`
	Playing bool   `json:"playing"`
}

func (p *playback) play(src string) {
	p.src = src
	p.playing = true
}

// pause is a no-op when nothing is playing.
func (p *playback) pause() bool {
	if !p.playing {
		return false
	}
	p.playing = false
	return true
}

// resume is a no-op when already playing or when no handle exists.
func (p *playback) resume() bool {
	if p.playing || p.src == "" {
		return false
	}
	p.playing = true
	return true
}

// ended clears the playing flag only for the handle it belongs to; an end
// notification from a superseded handle is ignored.
func (p *playback) ended(src string) bool {
	if p.src != src || !p.playing {
		return false
	}
	p.playing = false
	return true
}

func (p *playback) view() PlaybackView {
	return PlaybackView{Src: p.src, Playing: p.playing}
}
