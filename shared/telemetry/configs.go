package telemetry

// Predefined service configurations
var (
	// BookingServiceConfig is the telemetry configuration for the booking API
	BookingServiceConfig = Config{
		ServiceName:    "booking-service",
		ServiceVersion: "1.0.0",
	}

	// NotificationWorkerConfig is the telemetry configuration for the notification worker
	NotificationWorkerConfig = Config{
		ServiceName:    "notification-worker",
		ServiceVersion: "1.0.0",
	}
)

// WithOTLPEndpoint sets the OTLP endpoint for a config. An empty endpoint
// keeps metrics on the Prometheus exporter only.
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}

// WithServiceName overrides the service name
func (c Config) WithServiceName(name string) Config {
	if name != "" {
		c.ServiceName = name
	}
	return c
}
