// Command chatserver runs one replica of the chat262 cluster: `chatserver
// <id> <ip0> <ip1> <ip2>`, where id is this replica's own index into the
// three-element static address list (spec.md §6).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/chat262/cluster/internal/health"
	"github.com/chat262/cluster/internal/logging"
	"github.com/chat262/cluster/internal/replica"
	"github.com/chat262/cluster/internal/store"
)

func main() {
	storeFlag := flag.String("store", "bolt",
		"durable backend: 'bolt' (default) or a postgres://... / mysql://... DSN")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-store=bolt|postgres://...|mysql://...] <id> <ip0> <ip1> <ip2>\n", os.Args[0])
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 4 {
		flag.Usage()
		os.Exit(2)
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		logging.Errorf("chatserver: invalid replica id %q: %v", args[0], err)
		flag.Usage()
		os.Exit(2)
	}

	identity, err := replica.NewIdentity(id, [3]string{args[1], args[2], args[3]}, "")
	if err != nil {
		logging.Errorf("chatserver: %v", err)
		os.Exit(2)
	}

	db, err := openStore(*storeFlag, identity)
	if err != nil {
		logging.Errorf("chatserver: open store: %v", err)
		os.Exit(1)
	}

	srv, err := replica.NewServer(identity, db)
	if err != nil {
		logging.Errorf("chatserver: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logging.Infof("chatserver: shutdown signal received")
		cancel()
	}()

	go health.Report(ctx, fmt.Sprintf("replica.%d", id), 30*time.Second)

	if err := srv.Serve(ctx); err != nil {
		logging.Errorf("chatserver: serve: %v", err)
		srv.Close()
		os.Exit(1)
	}
	srv.Close()
}

func openStore(dsn string, identity replica.Identity) (store.Store, error) {
	if dsn == "" || dsn == "bolt" {
		return store.OpenBoltStore(identity.DBPath)
	}
	return store.OpenSQLStore(dsn, identity.ID)
}
