package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"log"
	"os"

	"volcano/internal/app"
	"volcano/internal/server"
	"volcano/internal/terrain"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	addr := flag.String("addr", ":2222", "listen address")
	hostKey := flag.String("host-key", "host_key", "path to the ed25519 host key (generated if missing)")
	tps := flag.Int("tps", 15, "preview frames per second")
	speed := flag.Float64("speed", 4, "simulated seconds per real second")
	var overrides app.KVList
	flag.Var(&overrides, "set", "terrain parameter override in key=value form (repeatable)")
	flag.Parse()

	if port := os.Getenv("PORT"); port != "" {
		*addr = ":" + port
	}
	if err := ensureHostKey(*hostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	cfg := terrain.FromMap(overrides.Map())
	if _, err := terrain.New(cfg); err != nil {
		log.Fatalf("terrain: %v", err)
	}

	srv := server.NewSSHServer(*addr, *hostKey, cfg)
	srv.TPS = *tps
	srv.Speed = *speed
	log.Printf("Preview ready, connect with: ssh -t -p %s localhost", portOf(*addr))
	if err := srv.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: der})
}
