package main

import (
	"os"

	"github.com/MKhiriev/envresolve/cmd/envresolve/commands"
	"github.com/MKhiriev/envresolve/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	app := commands.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	os.Exit(app.Execute(os.Args[1:]))
}
