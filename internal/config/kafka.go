package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	Topic      string   `yaml:"changes-topic"`
}

// Enabled reports whether change events are exchanged at all.
func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) ChangesTopic() string {
	return s.Topic
}
