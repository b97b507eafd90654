package proxy

import (
	"log"

	logrus "github.com/sirupsen/logrus"
)

// stdLogAdapter bridges net/http.Server's stdlib *log.Logger (used for
// per-connection errors, including TLS handshake failures) into
// logrus at warn level, so every acceptor log line goes through the
// same structured logger.
func stdLogAdapter() *log.Logger {
	w := logrus.StandardLogger().WriterLevel(logrus.WarnLevel)
	return log.New(w, "", 0)
}
