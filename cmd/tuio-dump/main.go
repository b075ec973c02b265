// Command tuio-dump listens for TUIO 1.1 traffic on a UDP socket and
// logs dispatched add and remove events (and, with -v, update and refresh
// events too), grounded on
// the teacher's cmd/ublk-mem tool: flag-driven setup, the same
// structured logger, a signal handler for clean shutdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/halvarsson/go-tuio"
	"github.com/halvarsson/go-tuio/internal/logging"
)

func main() {
	var (
		listen  = flag.String("listen", tuio.DefaultConfig().ListenAddress, "UDP address to listen on")
		verbose = flag.Bool("v", false, "verbose (debug) logging")
	)
	flag.Parse()

	logConfig := logging.DefaultConfig()
	if *verbose {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.NewLogger(logConfig)
	logging.SetDefault(logger)

	srv, err := tuio.NewServer(tuio.Config{ListenAddress: *listen}, &tuio.Options{Logger: logger})
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}
	srv.Register(&dumpListener{logger: logger})

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
	logger.Info("listening for TUIO traffic", "address", srv.LocalAddr())
	fmt.Printf("tuio-dump listening on %s, press Ctrl+C to stop\n", srv.LocalAddr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")
	if err := srv.Close(); err != nil {
		logger.Error("error closing server", "error", err)
	}
	snap := srv.Metrics().Snapshot()
	logger.Info("final metrics",
		"decode_errors", snap.DecodeErrors,
		"set_errors", snap.SetErrors,
		"listener_errors", snap.ListenerErrors)
}

// dumpListener logs every dispatched callback; it embeds BaseListener so
// adding a method to the Listener interface in the future does not break
// this command.
type dumpListener struct {
	tuio.BaseListener
	logger *logging.Logger
}

func (d *dumpListener) AddTuioCursor(e tuio.Entity) {
	d.logger.Info("add_cursor", "session_id", e.SessionID())
}

func (d *dumpListener) UpdateTuioCursor(e tuio.Entity) {
	d.logger.Debug("update_cursor", "session_id", e.SessionID())
}

func (d *dumpListener) RemoveTuioCursor(e tuio.Entity) {
	d.logger.Info("remove_cursor", "session_id", e.SessionID())
}

func (d *dumpListener) AddTuioObject(e tuio.Entity) {
	d.logger.Info("add_object", "session_id", e.SessionID())
}

func (d *dumpListener) UpdateTuioObject(e tuio.Entity) {
	d.logger.Debug("update_object", "session_id", e.SessionID())
}

func (d *dumpListener) RemoveTuioObject(e tuio.Entity) {
	d.logger.Info("remove_object", "session_id", e.SessionID())
}

func (d *dumpListener) AddTuioBlob(e tuio.Entity) {
	d.logger.Info("add_blob", "session_id", e.SessionID())
}

func (d *dumpListener) UpdateTuioBlob(e tuio.Entity) {
	d.logger.Debug("update_blob", "session_id", e.SessionID())
}

func (d *dumpListener) RemoveTuioBlob(e tuio.Entity) {
	d.logger.Info("remove_blob", "session_id", e.SessionID())
}

func (d *dumpListener) Refresh(frameTime float64) {
	d.logger.Debug("refresh", "frame_time", frameTime)
}
