package downloads

import (
	"context"

	"dlctl/pkg/driver/notification"
)

// Notification titles shown to the user.
const (
	TitleFolderNotFound = "Downloads folder not found"
	TitleFolderEmpty    = "Downloads folder is empty"
	TitleNoAccessible   = "No accessible files found"
	TitleCopied         = "Copied to clipboard"
	TitleCopyFailed     = "Failed to copy file"
	TitleAlreadyEmpty   = "Downloads empty"
	TitleTrashed        = "Files trashed"
)

// Notifier shows a notification to the user.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}

// Clipboard puts a file reference on the clipboard.
type Clipboard interface {
	CopyFile(ctx context.Context, path string) error
}

// Trasher moves literal paths to the trash.
type Trasher interface {
	Trash(ctx context.Context, paths []string) error
}

func failure(title, message string) notification.Notification {
	return notification.Notification{Style: notification.Failure, Kind: notification.Toast, Title: title, Message: message}
}

func success(title, message string) notification.Notification {
	return notification.Notification{Style: notification.Success, Kind: notification.Toast, Title: title, Message: message}
}

// CopyEntry copies e to the clipboard and reports the outcome. The returned
// error is the notifier's; clipboard failures are reported, not returned.
func CopyEntry(ctx context.Context, cb Clipboard, n Notifier, e Entry) error {
	if err := cb.CopyFile(ctx, e.Path); err != nil {
		return n.Notify(ctx, failure(TitleCopyFailed, err.Error()))
	}
	return n.Notify(ctx, success(TitleCopied, e.Name))
}
