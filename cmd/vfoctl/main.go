package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"vfotool/device"
	"vfotool/locate"
	"vfotool/logfile"
	"vfotool/serial"
	"vfotool/session"
)

var (
	// Global flags
	deviceFlag  string
	vidFlag     string
	pidFlag     string
	productFlag string
	baudFlag    int
	timeoutFlag int
)

var rootCmd = &cobra.Command{
	Use:   "vfoctl",
	Short: "vfoctl - DigitalVFO serial control toolkit",
	Long: `vfoctl talks to a DigitalVFO instrument over its USB serial port. It can
list candidate devices, run frequency sweeps, exercise the command loop while
logging responses, and record battery voltage telemetry for the charge and
discharge plots.`,
}

func init() {
	// Disable the default help command (use --help flag instead)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Global flags (available to all commands)
	rootCmd.PersistentFlags().StringVarP(&deviceFlag, "device", "d", "", "Serial port path; skips USB discovery")
	rootCmd.PersistentFlags().StringVar(&vidFlag, "vid", "16c0", "USB vendor ID to match, hex (default: Teensy)")
	rootCmd.PersistentFlags().StringVar(&pidFlag, "pid", "0483", "USB product ID to match, hex (default: Teensy)")
	rootCmd.PersistentFlags().StringVar(&productFlag, "product", "", "Match the USB product string instead of vendor/product IDs")
	rootCmd.PersistentFlags().IntVarP(&baudFlag, "baud", "b", 115200, "Baud rate (ignored by USB CDC devices)")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0, "Read timeout in milliseconds (0 = block)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// matcher builds the device filter from the global flags
func matcher() (locate.Match, error) {
	if productFlag != "" {
		return locate.ByProduct(productFlag), nil
	}
	vid, err := strconv.ParseUint(vidFlag, 16, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor ID %q", vidFlag)
	}
	pid, err := strconv.ParseUint(pidFlag, 16, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID %q", pidFlag)
	}
	return locate.ByID(uint16(vid), uint16(pid)), nil
}

// locateDevice resolves exactly one matching serial port or exits. No port
// is opened unless discovery finds a single unambiguous device.
func locateDevice() string {
	if deviceFlag != "" {
		return deviceFlag
	}

	match, err := matcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	desc, err := locate.Resolve(locate.USBEnumerator{}, match)
	switch {
	case errors.Is(err, locate.ErrNoDevice):
		fmt.Fprintln(os.Stderr, "Can't find any matching devices to control.")
		os.Exit(1)
	case errors.Is(err, locate.ErrAmbiguous):
		fmt.Fprintln(os.Stderr, "Too many matching devices - can't choose!")
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return desc.Port
}

// connectVFO opens the resolved port. Failure to open is fatal; no retry.
func connectVFO(path string) *device.VFO {
	fmt.Fprintf(os.Stderr, "Opening device %s\n", path)

	vfo := device.New()
	cfg := &serial.Config{
		Device:      path,
		Baud:        baudFlag,
		ReadTimeout: timeoutFlag,
	}
	if err := vfo.ConnectWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return vfo
}

// mustIdentify verifies the device is a DigitalVFO before any other command
// is sent. A mismatch aborts the whole run.
func mustIdentify(vfo *device.VFO) {
	id, err := vfo.Identify()
	if err != nil {
		if errors.Is(err, device.ErrNotVFO) {
			fmt.Fprintf(os.Stderr, "Sorry, not a DigitalVFO device, ID=%s\n", id)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		vfo.Close()
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Identified: %s\n", id)
}

// finishSession maps a session result to the user-facing outcome: an
// interrupt is the normal way to stop the infinite variants, anything else
// is fatal. Callers must have released the port already; os.Exit runs no
// deferred closes.
func finishSession(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "\nInterrupted - closing device.")
		return nil
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
	return nil
}

// runSession drives one session over a freshly located and opened port,
// closing it on every exit path.
func runSession(ctx context.Context, src session.Source, cfg session.Config, sink session.Sink, identify bool) error {
	vfo := connectVFO(locateDevice())

	if identify {
		mustIdentify(vfo)
	}

	err := session.Run(ctx, vfo, src, cfg, sink)
	vfo.Close()
	return finishSession(err)
}

// runLoggedSession is runSession with a log-file sink. The device is located
// first so that a zero- or many-match exit leaves no file behind.
func runLoggedSession(ctx context.Context, src session.Source, cfg session.Config, outPath string, identify bool) error {
	path := locateDevice()

	sink, err := logfile.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sink.Close()

	vfo := connectVFO(path)

	if identify {
		mustIdentify(vfo)
	}

	err = session.Run(ctx, vfo, src, cfg, sink)
	vfo.Close()
	return finishSession(err)
}
