package cite

import (
	"citekit/src/internal/dates"
	"citekit/src/internal/names"
)

// defaultPlatform is assumed when a video record names no hosting platform.
const defaultPlatform = "YouTube"

// OnlineVideo is a video published on a hosting platform. The channel name
// takes the author position in both styles.
type OnlineVideo struct {
	common
	channel  string
	platform string
	url      string
	accessed dates.AccessDate
}

// OnlineVideoParams collects the fields for NewOnlineVideo. Channel and
// Accessed are required; Platform falls back to "YouTube" when blank.
type OnlineVideoParams struct {
	ID        string
	Title     string
	Author    names.Author
	Channel   string
	Platform  string
	Published *dates.PublishDate
	Accessed  dates.AccessDate
	URL       string
}

// NewOnlineVideo builds an immutable online-video record.
func NewOnlineVideo(p OnlineVideoParams) *OnlineVideo {
	platform := p.Platform
	if platform == "" {
		platform = defaultPlatform
	}
	return &OnlineVideo{
		common: common{
			id:        p.ID,
			title:     p.Title,
			author:    p.Author,
			published: clonePtr(p.Published),
		},
		channel:  p.Channel,
		platform: platform,
		url:      p.URL,
		accessed: p.Accessed,
	}
}

func (v *OnlineVideo) Kind() Kind { return KindOnlineVideo }

// Channel returns the publishing channel or account name.
func (v *OnlineVideo) Channel() string { return v.channel }

// Platform returns the hosting platform.
func (v *OnlineVideo) Platform() string { return v.platform }

// URL returns the video URL ("" when absent).
func (v *OnlineVideo) URL() string { return v.url }

// Accessed returns the day the video was last retrieved.
func (v *OnlineVideo) Accessed() dates.AccessDate { return v.accessed }

// FormatIEEE renders e.g. "scorpiopede. Tribute to anomalocaris.
// (Apr. 4, 2009). Accessed: Oct. 1, 2025. [Online Video]. Available: https://…"
func (v *OnlineVideo) FormatIEEE() (string, error) {
	parts := []string{ensurePeriod(v.channel), ensurePeriod(v.title)}
	if v.published != nil {
		parts = append(parts, "("+v.published.IEEE()+").")
	}
	parts = append(parts, "Accessed: "+v.accessed.IEEE()+".", "[Online Video].")
	if v.url != "" {
		parts = append(parts, "Available: "+v.url)
	}
	return joinParts(parts), nil
}

// FormatAPA renders e.g. "scorpiopede. (2009, April 4). Tribute to
// anomalocaris [Video]. YouTube. Retrieved October 1, 2025, from https://…"
func (v *OnlineVideo) FormatAPA() (string, error) {
	parts := []string{ensurePeriod(v.channel)}
	if v.published != nil {
		parts = append(parts, "("+v.published.APA()+").")
	}
	parts = append(parts, v.title+" [Video]. "+v.platform+".")
	if v.url != "" {
		parts = append(parts, "Retrieved "+v.accessed.APA()+", from "+v.url)
	} else {
		parts = append(parts, "Retrieved "+v.accessed.APA()+".")
	}
	return joinParts(parts), nil
}
