// Command pentomino starts the Pentomino Board server.
//
// It supports two modes:
//  1. "server" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "stdio-mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, preset directory, debug logging and optional ngrok
// tunneling. Every flag can also be set from the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/pentomino/api"
	"github.com/wricardo/mcp-training/pentomino/game/config"
	"github.com/wricardo/mcp-training/pentomino/game/service"
	"github.com/wricardo/mcp-training/pentomino/game/session"
	"github.com/wricardo/mcp-training/pentomino/transport/mcp"
	"github.com/wricardo/mcp-training/pentomino/transport/websocket"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Pentomino Board Server"
)

const (
	maintenanceInterval = time.Hour
	sessionMaxIdle      = 24 * time.Hour
)

// settings holds the resolved command line configuration
type settings struct {
	Port          int
	Host          string
	ConfigDir     string
	DefaultConfig string
	Debug         bool
	NgrokEnabled  bool
	NgrokAuth     string
	NgrokDomain   string
}

func (s settings) addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "HTTP server port",
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "HTTP server host",
			Sources: cli.EnvVars("HOST"),
		},
		&cli.StringFlag{
			Name:    "config-dir",
			Value:   "configs",
			Usage:   "Directory containing puzzle presets",
			Sources: cli.EnvVars("CONFIG_DIR"),
		},
		&cli.StringFlag{
			Name:    "default-config",
			Usage:   "Preset used when a session names none (default: classic)",
			Sources: cli.EnvVars("DEFAULT_CONFIG"),
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "Enable debug logging",
			Sources: cli.EnvVars("DEBUG"),
		},
		&cli.BoolFlag{
			Name:    "ngrok",
			Usage:   "Enable ngrok tunnel",
			Sources: cli.EnvVars("NGROK_ENABLED"),
		},
		&cli.StringFlag{
			Name:    "ngrok-auth",
			Usage:   "Ngrok auth token",
			Sources: cli.EnvVars("NGROK_AUTHTOKEN", "NGROK_AUTH_TOKEN"),
		},
		&cli.StringFlag{
			Name:    "ngrok-domain",
			Usage:   "Custom ngrok domain (optional)",
			Sources: cli.EnvVars("NGROK_DOMAIN"),
		},
	}
}

func settingsFrom(cmd *cli.Command) settings {
	return settings{
		Port:          cmd.Int("port"),
		Host:          cmd.String("host"),
		ConfigDir:     cmd.String("config-dir"),
		DefaultConfig: cmd.String("default-config"),
		Debug:         cmd.Bool("debug"),
		NgrokEnabled:  cmd.Bool("ngrok"),
		NgrokAuth:     cmd.String("ngrok-auth"),
		NgrokDomain:   cmd.String("ngrok-domain"),
	}
}

// newRootCommand builds the CLI. The root action runs the HTTP server.
func newRootCommand() *cli.Command {
	runServer := func(ctx context.Context, cmd *cli.Command) error {
		return runHTTPServer(ctx, settingsFrom(cmd))
	}

	return &cli.Command{
		Name:    "pentomino",
		Usage:   AppName,
		Version: Version,
		Flags:   globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Action: runServer,
		Commands: []*cli.Command{
			{
				Name:    "server",
				Aliases: []string{"http"},
				Usage:   "Run HTTP server with API, WebSocket, and MCP endpoint (default)",
				Action:  runServer,
			},
			{
				Name:    "stdio-mcp",
				Aliases: []string{"mcp-stdio", "mcp"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStdioMCPWithInternalServer(ctx, settingsFrom(cmd))
				},
			},
		},
	}
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// initializeServices wires the preset and session managers into the game
// service. Engine changes are pushed to hub when it is not nil. An empty
// defaultConfig keeps the preset manager's own choice.
func initializeServices(configDir, defaultConfig string, hub *websocket.Hub) (service.GameService, *config.Manager, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if defaultConfig != "" {
		if err := configManager.SetDefault(defaultConfig); err != nil {
			return nil, nil, fmt.Errorf("failed to set default config %q: %w", defaultConfig, err)
		}
	}

	sessionManager := session.NewManager()

	var notifier service.Notifier
	if hub != nil {
		notifier = hub
	}
	gameService := service.NewGameServiceWithNotifier(sessionManager, configManager, notifier)

	return gameService, configManager, nil
}

// maintenanceRoutine periodically removes sessions that have not been accessed
// within maxIdle and reloads presets from disk. It returns when ctx is done.
func maintenanceRoutine(ctx context.Context, gameService service.GameService, presets *config.Manager, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := gameService.CleanupExpiredSessions(ctx, maxIdle); removed > 0 {
				log.Printf("Cleaned up %d expired sessions", removed)
			}
			if err := presets.RefreshCache(); err != nil {
				log.Printf("Warning: Failed to refresh presets: %v", err)
			}
		}
	}
}

// mcpHandler serves JSON-RPC MCP messages posted to /mcp
func mcpHandler(mcpClient *mcp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	}
}

// newRouter mounts the REST API at the root and the MCP endpoint at /mcp
func newRouter(apiServer http.Handler, mcpClient *mcp.Client) *http.ServeMux {
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", mcpHandler(mcpClient))
	return mainRouter
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint.
// If ngrok is enabled, it also provisions a public tunnel.
func runHTTPServer(parent context.Context, cfg settings) error {
	log.Printf("Starting %s v%s (mode: server)", AppName, Version)

	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	gameService, presets, err := initializeServices(cfg.ConfigDir, cfg.DefaultConfig, hub)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	addr := cfg.addr()
	apiServer := api.NewServer(gameService, hub)
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))
	mainRouter := newRouter(apiServer, mcpClient)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	go maintenanceRoutine(ctx, gameService, presets, maintenanceInterval, sessionMaxIdle)

	var wg sync.WaitGroup
	serveErr := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	if cfg.NgrokEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(ctx, cfg, mainRouter)
		}()
	}

	select {
	case sig := <-stop:
		log.Printf("Received signal: %v. Shutting down...", sig)
	case err := <-serveErr:
		log.Printf("HTTP server failed: %v", err)
		cancel()
		wg.Wait()
		return err
	case <-parent.Done():
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// runNgrokTunnel serves handler through an ngrok tunnel until ctx is done
func runNgrokTunnel(ctx context.Context, cfg settings, handler http.Handler) {
	if cfg.NgrokAuth == "" {
		log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN env var)")
		return
	}

	log.Println("Starting ngrok tunnel...")

	var tunnel ngrokConfig.Tunnel
	if cfg.NgrokDomain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(cfg.NgrokDomain))
		log.Printf("Using custom ngrok domain: %s", cfg.NgrokDomain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx,
		tunnel,
		ngrok.WithAuthtoken(cfg.NgrokAuth),
	)
	if err != nil {
		log.Printf("Failed to start ngrok tunnel: %v", err)
		return
	}

	// http.Serve only returns once the listener is closed
	go func() {
		<-ctx.Done()
		if err := tun.Close(); err != nil {
			log.Printf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	ngrokURL := tun.URL()
	log.Printf("🚀 Ngrok tunnel established: %s", ngrokURL)
	log.Printf("  REST API (ngrok): %s/api", ngrokURL)
	log.Printf("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
	log.Printf("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed && ctx.Err() == nil {
		log.Printf("Ngrok server error: %v", err)
	}
	log.Println("Ngrok tunnel closed")
}

// externalAPIAvailable reports whether a server answers health checks at baseURL
func externalAPIAvailable(baseURL string) bool {
	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(baseURL + "/api/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// runStdioMCPWithInternalServer runs an MCP stdio server.
// It tries to reuse an external API on the configured port; if unavailable, it
// starts an internal HTTP API bound to a random loopback port and targets that.
func runStdioMCPWithInternalServer(ctx context.Context, cfg settings) error {
	externalURL := fmt.Sprintf("http://%s", cfg.addr())
	log.Printf("Checking for external API server at %s...", externalURL)

	baseURL := externalURL
	if externalAPIAvailable(externalURL) {
		log.Printf("External API server found at %s, using it for MCP", externalURL)
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		hub := websocket.NewHub()
		go hub.Run()
		defer hub.Stop()

		gameService, presets, err := initializeServices(cfg.ConfigDir, cfg.DefaultConfig, hub)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}

		cleanupCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go maintenanceRoutine(cleanupCtx, gameService, presets, maintenanceInterval, sessionMaxIdle)

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := listener.Addr().String()
		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		httpServer := &http.Server{
			Handler: api.NewServer(gameService, hub),
		}
		defer httpServer.Close()

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Printf("MCP stdio server ready (API at %s)", baseURL)

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
