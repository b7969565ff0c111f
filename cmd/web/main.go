package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/aimtrainer/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "2222")

	addr := net.JoinHostPort(host, port)
	log.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, newHandler(sshHost, sshPort)); err != nil {
		log.Fatal("server error", "err", err)
	}
}

// newHandler serves the landing page with the connection command filled in.
func newHandler(sshHost, sshPort string) http.Handler {
	page := strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.SSHPort}}", sshPort,
	).Replace(htmlPage)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	return mux
}
