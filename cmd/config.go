package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	RedisHost      string
	RedisPort      string
	StaleAfterDays int
	SweepSchedule  string
}
