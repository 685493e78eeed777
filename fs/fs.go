package fs

import (
	"os"
	"path/filepath"

	"github.com/sivajeyabalan/blogapi/term"
)

var HomeDir string
var HomeBlogDir string
var HomeAuthPath string
var HomeAccountsPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err)
	}
	HomeDir = home

	if os.Getenv("BLOG_ENV") == "development" {
		HomeBlogDir = filepath.Join(home, ".blog-home-dev")
	} else {
		HomeBlogDir = filepath.Join(home, ".blog-home")
	}

	err = os.MkdirAll(HomeBlogDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit("Error creating blog home dir: %v", err)
	}

	HomeAuthPath = filepath.Join(HomeBlogDir, "auth.json")
	HomeAccountsPath = filepath.Join(HomeBlogDir, "accounts.json")
	HomeLogPath = filepath.Join(HomeBlogDir, "blog.log")
}
