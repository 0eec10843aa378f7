package stderr

import (
	"bytes"
	"context"
	"testing"

	"dlctl/pkg/driver/notification"
)

func TestNotifyFormats(t *testing.T) {
	tests := []struct {
		name string
		n    notification.Notification
		want string
	}{
		{
			name: "success with detail",
			n:    notification.Notification{Style: notification.Success, Title: "Copied to clipboard", Message: "b.txt"},
			want: "✓ Copied to clipboard: b.txt\n",
		},
		{
			name: "failure without detail",
			n:    notification.Notification{Style: notification.Failure, Title: "Downloads folder not found"},
			want: "✗ Downloads folder not found\n",
		},
		{
			name: "hud",
			n:    notification.Notification{Kind: notification.HUD, Title: "Downloads empty"},
			want: "✓ Downloads empty\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := &Driver{Out: &buf}
			if err := d.Notify(context.Background(), tt.n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got=%q want=%q", buf.String(), tt.want)
			}
		})
	}
}
