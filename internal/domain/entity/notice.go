package entity

// NoticeKind identifies which user-facing acknowledgement is shown.
type NoticeKind string

const (
	// NoticePermissionDenied is shown when camera access is refused.
	NoticePermissionDenied NoticeKind = "permission_denied"
	// NoticeScanAccepted is shown after a payload has been captured.
	NoticeScanAccepted NoticeKind = "scan_accepted"
	// NoticeCopySucceeded is shown after the payload reached the clipboard.
	NoticeCopySucceeded NoticeKind = "copy_succeeded"
	// NoticeCopyFailed is shown when the clipboard write failed.
	NoticeCopyFailed NoticeKind = "copy_failed"
)

// Notice is a blocking acknowledgement shown to the user.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// NewNotice builds a notice with the standard title and message for kind.
func NewNotice(kind NoticeKind) Notice {
	n := Notice{Kind: kind}
	switch kind {
	case NoticePermissionDenied:
		n.Title = "Camera"
		n.Message = "Camera access is required to scan codes"
	case NoticeScanAccepted:
		n.Title = "QR code"
		n.Message = "Data extracted successfully"
	case NoticeCopySucceeded:
		n.Title = "Success"
		n.Message = "Data copied to clipboard"
	case NoticeCopyFailed:
		n.Title = "Clipboard"
		n.Message = "Could not copy data to clipboard"
	}
	return n
}
