package telemetry

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/denisbrodbeck/machineid"
)

const appID = "fabkit"

// CollectMachineInfo gathers information about the machine running the CLI
func CollectMachineInfo() MachineInfo {
	return MachineInfo{
		OsName:       runtime.GOOS,
		OsVersion:    getOSVersion(),
		Architecture: runtime.GOARCH,
	}
}

// CollectActorInfo returns an anonymous, stable actor for this machine.
func CollectActorInfo() *ActorInfo {
	// The fallback id is always usable, so the error only matters for debugging.
	machineID, err := getMachineID()
	if err != nil {
		debugLog("%v", err)
	}
	return &ActorInfo{MachineID: machineID}
}

// getMachineID prefers an id pinned in ~/.fabkit/machine_id, then the
// hashed system id, then a hostname based fallback.
func getMachineID() (string, error) {
	if home, err := os.UserHomeDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(home, ".fabkit", "machine_id")); err == nil && len(data) > 0 {
			return strings.TrimSpace(string(data)), nil
		}
	}

	id, err := machineid.ProtectedID(appID)
	if err == nil {
		return "machine_" + id, nil
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "unknown"
	}
	return fmt.Sprintf("machine_%s_%s_%s", hostname, runtime.GOOS, runtime.GOARCH),
		fmt.Errorf("failed to get system machine ID, using fallback: %w", err)
}

func getOSVersion() string {
	var version string
	switch runtime.GOOS {
	case "darwin":
		version = commandOutput("sw_vers", "-productVersion")
	case "linux":
		version = linuxReleaseField("VERSION_ID")
		if version == "" {
			version = linuxReleaseField("PRETTY_NAME")
		}
		if version == "" {
			version = commandOutput("uname", "-r")
		}
	case "windows":
		version = commandOutput("cmd", "/c", "ver")
	}
	if version == "" {
		return "unknown"
	}
	return version
}

func linuxReleaseField(key string) string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}

func commandOutput(name string, args ...string) string {
	output, err := exec.Command(name, args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
