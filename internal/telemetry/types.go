package telemetry

// UserEventInput is the payload of the reportUserEvent mutation.
type UserEventInput struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
	CliVersion string            `json:"cliVersion"`
	Machine    MachineInfo       `json:"machine"`
	Actor      *ActorInfo        `json:"actor,omitempty"`
}

// MachineInfo contains information about the machine running the CLI
type MachineInfo struct {
	OsName       string `json:"osName"`
	OsVersion    string `json:"osVersion"`
	Architecture string `json:"architecture"`
}

// ActorInfo identifies the installation anonymously.
type ActorInfo struct {
	MachineID string `json:"machineId"`
}

// ReportUserEventResponse represents the response from the reportUserEvent mutation
type ReportUserEventResponse struct {
	ReportUserEvent struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	} `json:"reportUserEvent"`
}
