// Package main is the bin2hdr command line tool. It converts a binary
// file into a C++ header declaring the file's bytes as a static array,
// intended to be invoked as a single-shot build step:
//
//	bin2hdr INPUT OUTPUT
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bin2hdr/bin2hdr/internal/embedder"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"

	showVersion = flag.Bool("version", false, "Show version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("bin2hdr %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	logger := initLogger()
	defer logger.Sync()

	res, err := embedder.Embed(inputPath, outputPath)
	if err != nil {
		logger.Fatal("Embed failed",
			zap.String("input", inputPath),
			zap.String("output", outputPath),
			zap.Error(err))
	}

	logger.Info("Wrote header",
		zap.String("output", outputPath),
		zap.String("guard", res.Guard),
		zap.Int("bytes", res.Bytes))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  bin2hdr [OPTIONS] INPUT OUTPUT\nOptions:\n")
	flag.PrintDefaults()
}

// initLogger creates a console zap logger writing to stderr, keeping
// stdout clean for build systems that capture it.
func initLogger() *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
