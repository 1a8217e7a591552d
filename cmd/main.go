package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/heads-up-poker/communication"
	"github.com/luca-patrignani/heads-up-poker/config"
	"github.com/luca-patrignani/heads-up-poker/discovery"
	"github.com/luca-patrignani/heads-up-poker/domain/deck"
	"github.com/luca-patrignani/heads-up-poker/domain/poker"
	"github.com/luca-patrignani/heads-up-poker/game"
	"github.com/luca-patrignani/heads-up-poker/network"
)

const defaultPort = 7777

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [config.yml]\n", os.Args[0])
		os.Exit(1)
	}
	path := ""
	if len(os.Args) == 2 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	level, _ := cfg.Level()
	if level <= slog.LevelDebug {
		pterm.EnableDebugMessages()
	}
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level))))
	slog.SetDefault(logger)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Heads", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Up ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()

	if cfg.Name == "" {
		cfg.Name, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your username").Show()
		pterm.Println()
	}
	pterm.Info.Printfln("Your username: %s", cfg.Name)

	if err := run(cfg, logger); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	var input game.Input = terminalInput{}
	if cfg.PlainInput {
		input = game.NewScannerInput(os.Stdin, os.Stdout)
	}
	gameOpts := []game.Option{
		game.WithLogger(logger),
		game.WithStartingChips(cfg.StartingChips),
		game.WithMaxRounds(cfg.MaxRounds),
	}

	if cfg.IsHost() {
		stream, err := host(cfg, logger)
		if err != nil {
			return err
		}
		conn := communication.NewConn(stream, logger)
		defer conn.Close()
		view := &terminalView{seat: poker.HostSeat}
		return game.NewHost(cfg.Name, conn, deck.New(), input, view, gameOpts...).Run()
	}
	stream, err := join(cfg, logger)
	if err != nil {
		return err
	}
	conn := communication.NewConn(stream, logger)
	defer conn.Close()
	view := &terminalView{seat: poker.GuestSeat}
	return game.NewGuest(cfg.Name, conn, input, view, gameOpts...).Run()
}

// host opens the table and waits for a guest.
func host(cfg *config.Config, logger *slog.Logger) (network.Stream, error) {
	address, err := hostAddress(cfg.Address)
	if err != nil {
		return nil, err
	}
	l, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	ln := network.Listen(l, peerOptions(cfg, cfg.Transport)...)
	defer ln.Close()
	pterm.Info.Println(listeningText(l))

	if cfg.Discovery.Enabled {
		d, err := discovery.Announce(
			discovery.Announcement{Name: cfg.Name, Address: ln.Addr(), Transport: cfg.Transport},
			discovery.WithPort(cfg.Discovery.Port),
			discovery.WithInterval(cfg.Discovery.Interval),
			discovery.WithLogger(logger),
		)
		if err != nil {
			logger.Warn("cannot announce the table", "error", err)
		} else {
			defer d.Close()
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Waiting for a guest to join ...")
	stream, err := ln.Accept()
	if err != nil {
		spinner.Fail()
		return nil, err
	}
	spinner.Success()
	return stream, nil
}

// join finds the host's table and connects to it.
func join(cfg *config.Config, logger *slog.Logger) (network.Stream, error) {
	address, transport, err := tableAddress(cfg, logger)
	if err != nil {
		return nil, err
	}
	spinner, _ := pterm.DefaultSpinner.Start("Trying to establish the connection with " + address + " ...")
	stream, err := network.Dial(address, peerOptions(cfg, transport)...)
	if err != nil {
		spinner.Fail()
		return nil, err
	}
	spinner.Success()
	return stream, nil
}

// tableAddress returns where the host listens and the transport it speaks.
func tableAddress(cfg *config.Config, logger *slog.Logger) (string, string, error) {
	if cfg.Discovery.Enabled {
		spinner, _ := pterm.DefaultSpinner.Start("Looking for open tables ...")
		ctx, cancel := discoveryContext(cfg.DialTimeout)
		defer cancel()
		table, err := discovery.FindTable(ctx,
			discovery.WithPort(cfg.Discovery.Port),
			discovery.WithLogger(logger),
		)
		if err == nil {
			spinner.Success("Found the table of " + table.Name)
			return table.Address, announcedTransport(cfg, table), nil
		}
		spinner.Warning("No table announced")
	}
	typed := cfg.Address
	if typed == "" {
		typed, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Enter the host address in ipaddr:port format").Show()
		pterm.Println()
	}
	address, err := completeAddress(localIP(), typed, defaultPort)
	return address, cfg.Transport, err
}

// announcedTransport prefers the transport the host announced over the
// configured one.
func announcedTransport(cfg *config.Config, table discovery.Announcement) string {
	switch table.Transport {
	case config.TransportTCP, config.TransportWebSocket:
		return table.Transport
	default:
		return cfg.Transport
	}
}

func peerOptions(cfg *config.Config, transport string) []network.PeerOption {
	opts := []network.PeerOption{network.WithTimeout(cfg.DialTimeout)}
	if transport == config.TransportWebSocket {
		opts = append(opts, network.WithWebSocket(cfg.WebSocketPath))
	}
	return opts
}

// discoveryContext bounds the wait for an announcement. A zero timeout
// waits forever, like Dial.
func discoveryContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// listeningText tells the player where the guest should connect.
func listeningText(l net.Listener) string {
	text := "Listening on " + l.Addr().String()
	if tcp, ok := l.(*net.TCPListener); ok {
		if subnet, err := subnetOfListener(tcp); err == nil {
			masked := net.IPNet{IP: subnet.IP.Mask(subnet.Mask), Mask: subnet.Mask}
			text += fmt.Sprintf(", reachable from %s", masked.String())
		}
	}
	return text
}

func hostAddress(configured string) (string, error) {
	host, port, err := splitHostPort(configured, defaultPort)
	if err != nil {
		return "", err
	}
	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("invalid port %q", port)
	}
	return net.JoinHostPort(host, port), nil
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
