package govee

// DeviceInfo is one device as reported by the account device listing.
type DeviceInfo struct {
	ID           string   `json:"device"`
	Model        string   `json:"model"`
	Name         string   `json:"deviceName"`
	Controllable bool     `json:"controllable"`
	Retrievable  bool     `json:"retrievable"`
	SupportCmds  []string `json:"supportCmds,omitempty"`
}

// Command is the control verb and value sent to a device.
type Command struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// RGB is the value payload of a color command.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// devicesResponse is the wire shape of GET /devices.
type devicesResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Devices []DeviceInfo `json:"devices"`
	} `json:"data"`
}

// controlRequest is the wire shape of PUT /devices/control.
type controlRequest struct {
	Device string  `json:"device"`
	Model  string  `json:"model"`
	Cmd    Command `json:"cmd"`
}
