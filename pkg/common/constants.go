package common

const (
	RedisStreamUpdateIngested = "regulatory.update.ingested"

	RedisStreamGroup    = "ingestor-group"
	RedisStreamConsumer = "ingestor-consumer"
)
