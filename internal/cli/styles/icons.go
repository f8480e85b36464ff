package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCamera    = "" // camera
	IconQRCode    = "" // qrcode
	IconClipboard = "" // clipboard
	IconLock      = "" // lock
	IconConfig    = "" // config
	IconDatabase  = "" // database
	IconCheck     = "" // check
	IconX         = "" // x
	IconWarning   = "" // warning
	IconInfo      = "" // info
	IconDoctor    = "" // stethoscope

	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGo        = "" // go gopher
	IconGithub    = "" // github
)
