package cmd

import "fmt"

// Config carries the runtime settings of the fulfillment service.
// KafkaHost may be empty, in which case store events are discarded.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaHost             string
	KafkaStoreEventsTopic string
}

// PostgresDSN builds the connection string for the configured database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
