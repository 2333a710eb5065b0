package common

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/joho/godotenv"
)

var (
	Port         = flag.Int("port", 3000, "the listening port")
	PrintVersion = flag.Bool("version", false, "print version and exit")
	PrintHelp    = flag.Bool("help", false, "print help and exit")
	LogDir       = flag.String("log-dir", "", "specify the log directory")
)

func printHelp() {
	fmt.Println("Akiba " + Version + " - retro image and AMV generator.")
	fmt.Println("Usage: akiba [--port <port>] [--log-dir <log directory>] [--version] [--help]")
}

// Init parses flags and loads .env. It must run before config values are read,
// so main calls it first thing.
func Init() {
	flag.Parse()

	if *PrintVersion {
		fmt.Println(Version)
		os.Exit(0)
	}

	if *PrintHelp {
		printHelp()
		os.Exit(0)
	}

	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}
	config.Reload()

	// command line > environment > console only
	logDir := *LogDir
	if logDir == "" {
		logDir = os.Getenv("LOG_DIR")
	}
	if logDir != "" {
		var err error
		logDir, err = filepath.Abs(logDir)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stat(logDir); os.IsNotExist(err) {
			err = os.Mkdir(logDir, 0777)
			if err != nil {
				log.Fatal(err)
			}
		}
		logger.LogDir = logDir
	}
}
