package model

import "time"

type ConnectionStatus string

const (
	ConnectionStatusConnected    ConnectionStatus = "CONNECTED"
	ConnectionStatusDisconnected ConnectionStatus = "DISCONNECTED"
	ConnectionStatusConnecting   ConnectionStatus = "CONNECTING"
	ConnectionStatusError        ConnectionStatus = "ERROR"
)

type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
	DeviceTypeIoT     DeviceType = "iot"
)

type LogLevel string

const (
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

type RouterStats struct {
	CPUUsage      float64 `json:"cpuUsage"`
	RAMUsage      float64 `json:"ramUsage"`
	Uptime        string  `json:"uptime"`
	DownloadSpeed float64 `json:"downloadSpeed"`
	UploadSpeed   float64 `json:"uploadSpeed"`
	Model         string  `json:"model"`
	Firmware      string  `json:"firmware"`
}

type Device struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	IP             string     `json:"ip"`
	MAC            string     `json:"mac"`
	Vendor         string     `json:"vendor,omitempty"`
	Signal         int        `json:"signal"`
	Type           DeviceType `json:"type"`
	Blocked        bool       `json:"blocked"`
	BandwidthUsage float64    `json:"bandwidthUsage"`
	LimitMbps      *float64   `json:"limitMbps,omitempty"`
}

// Clone returns a copy that shares no pointers with d.
func (d Device) Clone() Device {
	if d.LimitMbps != nil {
		limit := *d.LimitMbps
		d.LimitMbps = &limit
	}
	return d
}

type WifiConfig struct {
	SSID       string `json:"ssid"`
	Password   string `json:"password"`
	Enabled    bool   `json:"enabled"`
	Channel    int    `json:"channel"`
	Encryption string `json:"encryption"`
	Isolation  *bool  `json:"isolation,omitempty"`
}

// Clone returns a copy that shares no pointers with c.
func (c WifiConfig) Clone() WifiConfig {
	if c.Isolation != nil {
		isolation := *c.Isolation
		c.Isolation = &isolation
	}
	return c
}

// RouterState is the aggregate snapshot served to the dashboard.
type RouterState struct {
	Status     ConnectionStatus `json:"status"`
	Stats      RouterStats      `json:"stats"`
	Devices    []Device         `json:"devices"`
	Wifi       WifiConfig       `json:"wifi"`
	GuestWifi  WifiConfig       `json:"guestWifi"`
	AdminUser  string           `json:"adminUser"`
	LastUpdate int64            `json:"lastUpdate"`
	Error      *string          `json:"error,omitempty"`
}

// Clone returns a deep copy of s. Mutating the result never affects s.
func (s RouterState) Clone() RouterState {
	out := s
	out.Devices = make([]Device, len(s.Devices))
	for i, device := range s.Devices {
		out.Devices[i] = device.Clone()
	}
	out.Wifi = s.Wifi.Clone()
	out.GuestWifi = s.GuestWifi.Clone()
	if s.Error != nil {
		message := *s.Error
		out.Error = &message
	}
	return out
}

type SystemLog struct {
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
}
