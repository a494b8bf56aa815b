package main

import (
	"log"
	"net"
	"os"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/resolver"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/server"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/traverse"
)

// #region main
func main() {
	dbPath := envOr("PROV_DB", "origin_log.db")
	addr := envOr("PROV_ADDR", "localhost:50061")
	resolverAddr := os.Getenv("RESOLVER_ADDR")

	store, err := oplog.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open origin log: %v", err)
	}
	defer store.Close()

	writer := oplog.NewWriter(store, oplog.DefaultWriterConfig())
	defer writer.Close()

	// Without a resolver the engine still walks chains; steps just
	// carry no source locations.
	var res traverse.Resolver
	if resolverAddr != "" {
		client, err := resolver.NewClient(resolverAddr)
		if err != nil {
			log.Fatalf("failed to connect to resolver at %s: %v", resolverAddr, err)
		}
		defer client.Close()
		res = client
	} else {
		log.Println("RESOLVER_ADDR not set, serving unresolved locations")
	}

	engine := traverse.NewEngine(store, res, traverse.DefaultConfig())

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}
	log.Printf("provenance engine ready on %s (db: %s)", addr, dbPath)

	srv := server.New(store, writer, engine)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
