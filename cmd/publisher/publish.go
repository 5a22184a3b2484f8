package main

import (
	"encoding/json"
	"log"

	stan "github.com/nats-io/stan.go"
)

func stanConnect(clusterID, clientID, natsURL string) (stan.Conn, error) {
	return stan.Connect(clusterID, clientID, stan.NatsURL(natsURL))
}

func publish(sc stan.Conn, subject string, raw []byte, source string) {
	// снимок должен хотя бы парситься и нести идентификатор заказа,
	// иначе подписчик отвергнет его и сообщение зациклится
	var probe struct {
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		log.Fatalf("%s: invalid json: %v", source, err)
	}
	if probe.OrderID == "" {
		log.Fatalf("%s: order snapshot without order_id", source)
	}
	if err := sc.Publish(subject, raw); err != nil {
		log.Fatalf("publish %s: %v", source, err)
	}
	log.Printf("published %d bytes from %s to %s", len(raw), source, subject)
}
