package prelude

import (
	_ "dlctl/pkg/driver/clipboard/pasteboard"
	_ "dlctl/pkg/driver/clipboard/powershell"
	_ "dlctl/pkg/driver/clipboard/text"
	_ "dlctl/pkg/driver/clipboard/wayland"
	_ "dlctl/pkg/driver/clipboard/xclip"
	_ "dlctl/pkg/driver/env/native"
	_ "dlctl/pkg/driver/env/termux"
	_ "dlctl/pkg/driver/exec/native"
	_ "dlctl/pkg/driver/exec/termux"
	_ "dlctl/pkg/driver/notification/dbus"
	_ "dlctl/pkg/driver/notification/stderr"
	_ "dlctl/pkg/driver/notification/zenity"
	_ "dlctl/pkg/driver/trash/finder"
	_ "dlctl/pkg/driver/trash/freedesktop"
	_ "dlctl/pkg/driver/trash/gio"
	_ "dlctl/pkg/driver/trash/recyclebin"
)
