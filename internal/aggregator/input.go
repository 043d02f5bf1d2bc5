package aggregator

// InputType identifies the variant of a pending input.
type InputType string

const (
	TypeText  InputType = "text"
	TypeFile  InputType = "file"
	TypeMedia InputType = "media"
	TypeURL   InputType = "url"
)

// MediaKind tags admitted media as audio or video.
type MediaKind string

const (
	KindAudio MediaKind = "audio"
	KindVideo MediaKind = "video"
)

// PendingInput is one user-added, not-yet-submitted content item.
type PendingInput struct {
	ID        string
	Type      InputType
	Title     string
	Preview   string
	SizeBytes int64

	// Variant payloads: Text for pasted text, Path for file/media
	// (Kind set for media), URL for links.
	Text string
	Path string
	Kind MediaKind
	URL  string
}

// Rejection reports one file excluded from a batch with the reason.
type Rejection struct {
	Path   string
	Reason string
}
