// Command zb8 compresses or decompresses a single file (or stdin/stdout)
// using the ZB8 zero-run codec.
//
// Built the way klauspost/compress/s2/cmd/s2c and s2d are: plain standard
// library flag parsing, no CLI framework, since that is what the
// teacher's own command-line tools use. The CLI itself is not part of
// THE CORE (spec §1 names CLI wrappers as an out-of-scope external
// collaborator); it is a thin consumer of the public zb8 API.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openalgz/zb8"
	"github.com/openalgz/zb8/internal/cliconfig"
)

var (
	compress    = flag.Bool("c", false, "Compress input")
	decompress  = flag.Bool("d", false, "Decompress input")
	out         = flag.String("o", "", "Write output to this file instead of stdout")
	configPath  = flag.String("config", "", "Path to a zb8 config file (YAML/JSON/TOML, read with viper)")
	validate    = flag.Bool("validate", false, "On decode, run Validate and report every structural issue found")
	metricsAddr = flag.String("metrics", "", "If set, serve Prometheus metrics on this address (e.g. :9110) while running")
)

func main() {
	flag.Parse()

	cfg, err := cliconfig.Load(*configPath)
	exitErr(err)
	if *validate {
		cfg.Validate = true
	}

	var reg = prometheus.NewRegistry()
	codec := zb8.NewInstrumentedCodec(reg, cfg.Namespace)
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, reg)
	}

	args := flag.Args()
	input := os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		exitErr(err)
		defer f.Close()
		input = f
	}

	output := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		exitErr(err)
		defer f.Close()
		output = f
	}

	switch {
	case *compress && *decompress:
		exitErr(fmt.Errorf("zb8: -c and -d are mutually exclusive"))
	case *compress:
		exitErr(runCompress(codec, input, output))
	case *decompress:
		exitErr(runDecompress(codec, input, output, cfg.Validate))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runCompress(codec *zb8.InstrumentedCodec, input io.Reader, output io.Writer) error {
	src, err := io.ReadAll(input)
	if err != nil {
		return err
	}
	frame, err := codec.Compress(nil, src)
	if err != nil {
		return err
	}
	_, err = output.Write(frame)
	return err
}

func runDecompress(codec *zb8.InstrumentedCodec, input io.Reader, output io.Writer, checked bool) error {
	src, err := io.ReadAll(input)
	if err != nil {
		return err
	}
	if checked {
		if err := zb8.Validate(src); err != nil {
			return err
		}
	}
	out, err := codec.Decompress(nil, src)
	if err != nil {
		return err
	}
	_, err = output.Write(out)
	return err
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.Printf("zb8: serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("zb8: metrics server stopped: %v", err)
	}
}

func exitErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "\nERROR:", err.Error())
		os.Exit(2)
	}
}
