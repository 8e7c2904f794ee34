package main

import (
	"os"

	"github.com/MKhiriev/go-api-config/internal/cli"
	"github.com/MKhiriev/go-api-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(cli.Run(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}
