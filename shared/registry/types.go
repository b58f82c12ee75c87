// shared/registry/types.go
package registry

// ServiceInfo represents the details of a registered service instance.
// This information is stored in Redis and read by whoever needs to know
// which instances are alive (dashboards, load-balancer reconcilers).
type ServiceInfo struct {
	ServiceID   string            `json:"serviceId"`   // Unique ID for this specific instance
	ServiceType string            `json:"serviceType"` // Type of service (e.g., "canvas-service")
	IP          string            `json:"ip"`          // IP address where the instance is listening
	Port        int               `json:"port"`        // Port where the instance is listening
	LastSeen    int64             `json:"lastSeen"`    // Unix seconds of the last heartbeat
	Metadata    map[string]string `json:"metadata,omitempty"`
}
