package main

import (
	"encoding/json"
	"log"
	"os"
)

// Инструмент ленты заказов: публикует JSON-снимки заказов в предмет,
// который слушает сервис. Читает stdin или файлы из аргументов.
func main() {
	clusterID := getenv("STAN_CLUSTER_ID", "oms-cluster")
	clientID := getenv("STAN_PUB_ID", "order-feed-publisher")
	natsURL := getenv("NATS_URL", "nats://localhost:4223")
	subject := getenv("STAN_SUBJECT", "orders")

	sc, err := stanConnect(clusterID, clientID, natsURL)
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer sc.Close()

	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			raw, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("read %s: %v", path, err)
			}
			publish(sc, subject, raw, path)
		}
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(os.Stdin).Decode(&payload); err != nil {
		log.Fatalf("read json from stdin: %v", err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	publish(sc, subject, raw, "stdin")
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
