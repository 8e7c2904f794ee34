// Apiconfig resolves the backend API base URL a client should target and
// builds fully-qualified endpoint URLs from relative paths.
//
// Usage:
//
//	apiconfig resolve --source                 # print the base URL and its tier
//	apiconfig qualify /users/1                 # print a qualified endpoint URL
//	apiconfig info                             # print the environment snapshot
//	apiconfig override set https://staging.example.com
//	apiconfig override clear
//	apiconfig serve --address 127.0.0.1:8088   # diagnostics HTTP endpoints
//
// Build metadata and the baked backend URL are injected with -ldflags:
//
//	go build -ldflags "-X main.buildVersion=v1.0.0 \
//	  -X github.com/MKhiriev/go-api-config/internal/config.bakedBackendURL=https://api.example.com" \
//	  ./cmd/apiconfig
//
// Adding -tags prod switches the default build mode to production.
package main
