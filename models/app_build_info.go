package models

// AppBuildInfo reports the running binary's build metadata via the
// version endpoint.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
