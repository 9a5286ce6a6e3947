package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/irc.v4"

	"ircwire/internal/config"
	"ircwire/internal/logger"
	"ircwire/internal/transport"
	"ircwire/pkg/numerics"
	"ircwire/pkg/wire"
)

const connectTimeout = 30 * time.Second

// ircsend delivers a single message to a channel or nick and disconnects.
// It registers, joins the configured channels once the server has welcomed
// it, sends the message, and quits. There is no reconnect logic: a failed
// delivery is reported and left to the caller.
func main() {
	// A missing .env is fine; the config file carries the defaults.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Could not load .env file: %v", err)
	}

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <target> <message...>\n", os.Args[0])
		os.Exit(2)
	}
	target := os.Args[1]
	message := strings.Join(os.Args[2:], " ")

	configPath := config.GetConfigPath()
	logger.Infof("Loading configuration from %s", configPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Errorf("Configuration error: %v", err)
		os.Exit(1)
	}

	// Create a cancellable context to manage shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		logger.Infof("Shutdown signal received, exiting...")
		cancel()
	}()

	if err := run(ctx, cfg, target, message); err != nil {
		logger.Errorf("Delivery failed: %v", err)
		os.Exit(1)
	}
	logger.Successf("Message delivered to %s", target)
}

func run(ctx context.Context, cfg *config.Config, target, message string) error {
	logger.Infof("Connecting to IRC server at %s...", cfg.Server)
	conn, err := transport.Dial(ctx, cfg.Server, connectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	// Unblock ReadLine when a shutdown is requested.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	if cfg.Password != "" {
		if err := conn.Send(wire.Pass(cfg.Password)); err != nil {
			return err
		}
	}
	if err := conn.Send(wire.Nick(cfg.Nick)); err != nil {
		return err
	}
	if err := conn.Send(wire.User(cfg.User, cfg.RealName)); err != nil {
		return err
	}

	for {
		raw, err := conn.ReadLine()
		if err != nil {
			return fmt.Errorf("connection closed before delivery: %w", err)
		}

		msg, err := irc.ParseMessage(raw)
		if err != nil {
			logger.Debugf("Skipping unparseable line: %q", raw)
			continue
		}

		switch {
		case msg.Command == "PING":
			pong := wire.Pong(cfg.Nick, "")
			if len(msg.Params) > 0 {
				pong = wire.Pong(cfg.Nick, msg.Params[0])
			}
			if err := conn.Send(pong); err != nil {
				return err
			}

		case msg.Command == numerics.RPL_WELCOME:
			return deliver(conn, cfg, target, message)

		case numerics.LogonErrors.Contains(msg.Command):
			return fmt.Errorf("registration rejected by server (%s): %s", msg.Command, msg.Trailing())

		case numerics.IsError(msg.Command):
			logger.Warnf("Server error %s: %s", msg.Command, msg.Trailing())
		}
	}
}

func deliver(conn *transport.Conn, cfg *config.Config, target, message string) error {
	for _, channel := range cfg.Channels {
		logger.Infof("Joining %s", channel)
		if err := conn.Send(wire.Join(channel, "")); err != nil {
			return err
		}
	}

	if err := conn.Send(wire.Privmsg(target, message)); err != nil {
		return err
	}

	return conn.Send(wire.Quit(cfg.QuitMessage))
}
