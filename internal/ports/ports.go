package ports

// ProxyPorts aggregates the ports the proxy service is built from
type ProxyPorts struct {
	WeatherProvider WeatherProvider
	IPLocator       IPLocator
	Metrics         UpstreamMetrics
	Logger          Logger
}

// DashboardPorts aggregates the ports the dashboard client is built from
type DashboardPorts struct {
	Fetcher    WeatherFetcher
	StateStore StateStore
	Storage    KeyValueStore
	Logger     Logger
}
