//go:build darwin

package activation

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

// lf_frontmost_name returns a malloc'd copy of the frontmost app's name or NULL.
static char *lf_frontmost_name(void) {
	@autoreleasepool {
		NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
		if (app == nil || app.localizedName == nil) {
			return NULL;
		}
		return strdup([app.localizedName UTF8String]);
	}
}

// lf_running_apps returns a malloc'd "pid\tname\n" listing of running apps.
static char *lf_running_apps(void) {
	@autoreleasepool {
		NSMutableString *out = [NSMutableString string];
		for (NSRunningApplication *app in [[NSWorkspace sharedWorkspace] runningApplications]) {
			if (app.localizedName == nil) {
				continue;
			}
			[out appendFormat:@"%d\t%@\n", app.processIdentifier, app.localizedName];
		}
		return strdup([out UTF8String]);
	}
}

static int lf_activate(pid_t pid) {
	@autoreleasepool {
		NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
		if (app == nil) {
			return -1;
		}
#pragma clang diagnostic push
#pragma clang diagnostic ignored "-Wdeprecated-declarations"
		BOOL ok = [app activateWithOptions:NSApplicationActivateIgnoringOtherApps];
#pragma clang diagnostic pop
		return ok ? 0 : 1;
	}
}
*/
import "C"

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"launch-focus/pkg/core"
)

// workspaceBackend uses NSWorkspace directly instead of shelling out to osascript.
type workspaceBackend struct{}

func newNativeBackend(log core.Logger) Backend {
	log.Debug("Using NSWorkspace activation backend")
	return workspaceBackend{}
}

func (workspaceBackend) Name() string {
	return "NSWorkspace"
}

func (workspaceBackend) Frontmost() (string, error) {
	cName := C.lf_frontmost_name()
	if cName == nil {
		return "", fmt.Errorf("no frontmost application")
	}
	defer C.free(unsafe.Pointer(cName))
	return C.GoString(cName), nil
}

func (workspaceBackend) RunningApps() ([]RunningApp, error) {
	cList := C.lf_running_apps()
	if cList == nil {
		return nil, fmt.Errorf("failed to list running applications")
	}
	defer C.free(unsafe.Pointer(cList))
	return parseListing(C.GoString(cList)), nil
}

func (workspaceBackend) Activate(app RunningApp) error {
	switch C.lf_activate(C.pid_t(app.PID)) {
	case 0:
		return nil
	case -1:
		return fmt.Errorf("process %d is no longer running", app.PID)
	default:
		return fmt.Errorf("activation of %s declined", app.Name)
	}
}

// parseListing reads the "pid\tname" lines produced by lf_running_apps.
func parseListing(s string) []RunningApp {
	var apps []RunningApp
	for _, line := range strings.Split(s, "\n") {
		pidStr, name, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		pid, err := strconv.ParseInt(pidStr, 10, 32)
		if err != nil {
			continue
		}
		apps = append(apps, RunningApp{Name: name, PID: int32(pid)})
	}
	return apps
}
