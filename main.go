package main

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sivajeyabalan/blogapi/api"
	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/cmd"
	"github.com/sivajeyabalan/blogapi/fs"
)

func init() {
	// inter-package dependency injection to avoid circular imports
	auth.SetApiClient(api.Client)

	// terminal output stays clean; the standard logger goes to a rotating
	// file in the home config dir
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	})
}

func main() {
	checkForUpgrade()
	cmd.Execute()
}
