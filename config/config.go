package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SUPPLYFINDER"

// Keys.
const (
	KeySelfAddress          = "self_address"
	KeyRegistryAddress      = "registry_address"
	KeyFinderAddress        = "finder_address"
	KeyProviderTimeout      = "provider_timeout"
	KeyMaxConcurrentQueries = "max_concurrent_queries"
	KeyMetricsAddress       = "metrics_address"
	KeyKafkaBrokers         = "kafka_brokers"
	KeyKafkaTopic           = "kafka_topic"
	KeyCapacity             = "capacity"
	KeyName                 = "name"
	KeyLocation             = "location"
	KeyAdvertiseAddress     = "advertise_address"
	KeySeed                 = "seed"
	KeyLogLevel             = "log_level"
	KeyLogFormat            = "log_format"
	KeyTimeout              = "timeout"
	KeyTraceStdout          = "trace_stdout"
)

// Defaults.
const (
	DefaultFinderAddress   = ":50051"
	DefaultRegistryAddress = ":50052"
	DefaultProviderAddress = ":50053"
	DefaultRegistryTarget  = "localhost:50052"
	DefaultFinderTarget    = "localhost:50051"

	DefaultProviderTimeout      = 2 * time.Second
	DefaultMaxConcurrentQueries = 16
	DefaultCapacity             = 10

	DefaultLookupTopic       = "supplyfinder.lookups"
	DefaultAnnouncementTopic = "supplyfinder.providers"
)

var ErrInvalid = errors.New("invalid configuration")

// New returns a viper instance reading SUPPLYFINDER_* variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Bind attaches every flag of cmd, inherited ones included, to v under its
// underscore key.
func Bind(v *viper.Viper, cmd *cobra.Command) error {
	var errs []error
	bind := func(f *pflag.Flag) {
		if err := v.BindPFlag(Key(f.Name), f); err != nil {
			errs = append(errs, err)
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)
	return errors.Join(errs...)
}

// Key maps a flag name to its viper key.
func Key(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// -------------------- Flags --------------------

// AddLogFlags registers the logging flags every role shares.
func AddLogFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.String(flagName(KeyLogLevel), "info", "Log level: trace, debug, info, warn, error")
	fs.String(flagName(KeyLogFormat), "json", "Log format: json or console")
}

func AddFinderFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String(flagName(KeySelfAddress), DefaultFinderAddress, "Address the finder listens on")
	fs.String(flagName(KeyRegistryAddress), DefaultRegistryTarget, "Registry to discover providers from")
	fs.Duration(flagName(KeyProviderTimeout), DefaultProviderTimeout, "Deadline for one provider stock query")
	fs.Int(flagName(KeyMaxConcurrentQueries), DefaultMaxConcurrentQueries, "Provider queries in flight per lookup")
	fs.String(flagName(KeyMetricsAddress), "", "Address to serve Prometheus metrics on; empty disables it")
	fs.String(flagName(KeyKafkaBrokers), "", "Comma separated Kafka brokers for lookup events; empty disables them")
	fs.String(flagName(KeyKafkaTopic), DefaultLookupTopic, "Topic for lookup events")
	fs.Bool(flagName(KeyTraceStdout), false, "Write lookup spans to stderr")
}

func AddRegistryFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String(flagName(KeySelfAddress), DefaultRegistryAddress, "Address the registry listens on")
	fs.Int(flagName(KeyCapacity), DefaultCapacity, "Most providers the registry accepts")
	fs.String(flagName(KeyKafkaBrokers), "", "Comma separated Kafka brokers for announcements; empty disables them")
	fs.String(flagName(KeyKafkaTopic), DefaultAnnouncementTopic, "Topic for provider announcements")
}

func AddProviderFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String(flagName(KeySelfAddress), DefaultProviderAddress, "Address the provider listens on")
	fs.String(flagName(KeyRegistryAddress), DefaultRegistryTarget, "Registry to announce to")
	fs.String(flagName(KeyAdvertiseAddress), "", "Address announced to the registry; defaults to the listen address")
	fs.String(flagName(KeyName), "", "Display name; generated when empty")
	fs.String(flagName(KeyLocation), "", "Display location; generated when empty")
	fs.Uint64(flagName(KeySeed), 0, "Inventory seed; 0 uses the clock")
}

func AddLookupFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String(flagName(KeyFinderAddress), DefaultFinderTarget, "Finder to query")
	fs.Duration(flagName(KeyTimeout), 10*time.Second, "Deadline for the whole lookup")
}

// -------------------- Roles --------------------

type Log struct {
	Level  string
	Format string
}

type Kafka struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether any broker is configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Finder struct {
	Log                  Log
	SelfAddress          string
	RegistryAddress      string
	ProviderTimeout      time.Duration
	MaxConcurrentQueries int
	MetricsAddress       string
	TraceStdout          bool
	Kafka                Kafka
}

type Registry struct {
	Log         Log
	SelfAddress string
	Capacity    int
	Kafka       Kafka
}

type Provider struct {
	Log              Log
	SelfAddress      string
	RegistryAddress  string
	AdvertiseAddress string
	Name             string
	Location         string
	Seed             uint64
}

type Lookup struct {
	Log           Log
	FinderAddress string
	Timeout       time.Duration
}

func LoadFinder(v *viper.Viper) (Finder, error) {
	c := Finder{
		Log:                  loadLog(v),
		SelfAddress:          v.GetString(KeySelfAddress),
		RegistryAddress:      v.GetString(KeyRegistryAddress),
		ProviderTimeout:      v.GetDuration(KeyProviderTimeout),
		MaxConcurrentQueries: v.GetInt(KeyMaxConcurrentQueries),
		MetricsAddress:       v.GetString(KeyMetricsAddress),
		TraceStdout:          v.GetBool(KeyTraceStdout),
		Kafka:                loadKafka(v),
	}
	return c, c.Validate()
}

func LoadRegistry(v *viper.Viper) (Registry, error) {
	c := Registry{
		Log:         loadLog(v),
		SelfAddress: v.GetString(KeySelfAddress),
		Capacity:    v.GetInt(KeyCapacity),
		Kafka:       loadKafka(v),
	}
	return c, c.Validate()
}

func LoadProvider(v *viper.Viper) (Provider, error) {
	c := Provider{
		Log:              loadLog(v),
		SelfAddress:      v.GetString(KeySelfAddress),
		RegistryAddress:  v.GetString(KeyRegistryAddress),
		AdvertiseAddress: v.GetString(KeyAdvertiseAddress),
		Name:             v.GetString(KeyName),
		Location:         v.GetString(KeyLocation),
		Seed:             v.GetUint64(KeySeed),
	}
	return c, c.Validate()
}

func LoadLookup(v *viper.Viper) (Lookup, error) {
	c := Lookup{
		Log:           loadLog(v),
		FinderAddress: v.GetString(KeyFinderAddress),
		Timeout:       v.GetDuration(KeyTimeout),
	}
	return c, c.Validate()
}

func loadLog(v *viper.Viper) Log {
	return Log{
		Level:  v.GetString(KeyLogLevel),
		Format: v.GetString(KeyLogFormat),
	}
}

func loadKafka(v *viper.Viper) Kafka {
	var brokers []string
	for _, b := range strings.Split(v.GetString(KeyKafkaBrokers), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return Kafka{Brokers: brokers, Topic: v.GetString(KeyKafkaTopic)}
}

// -------------------- Validation --------------------

func (c Finder) Validate() error {
	return errors.Join(
		c.Log.validate(),
		required(KeySelfAddress, c.SelfAddress),
		required(KeyRegistryAddress, c.RegistryAddress),
		positive(KeyProviderTimeout, int64(c.ProviderTimeout)),
		positive(KeyMaxConcurrentQueries, int64(c.MaxConcurrentQueries)),
		c.Kafka.validate(),
	)
}

func (c Registry) Validate() error {
	return errors.Join(
		c.Log.validate(),
		required(KeySelfAddress, c.SelfAddress),
		positive(KeyCapacity, int64(c.Capacity)),
		c.Kafka.validate(),
	)
}

func (c Provider) Validate() error {
	return errors.Join(
		c.Log.validate(),
		required(KeySelfAddress, c.SelfAddress),
		required(KeyRegistryAddress, c.RegistryAddress),
	)
}

func (c Lookup) Validate() error {
	return errors.Join(
		c.Log.validate(),
		required(KeyFinderAddress, c.FinderAddress),
		positive(KeyTimeout, int64(c.Timeout)),
	)
}

// Advertise is the address announced to the registry. A listen address
// with no host is announced on localhost.
func (c Provider) Advertise() string {
	if c.AdvertiseAddress != "" {
		return c.AdvertiseAddress
	}
	if strings.HasPrefix(c.SelfAddress, ":") {
		return "localhost" + c.SelfAddress
	}
	return c.SelfAddress
}

func (l Log) validate() error {
	switch strings.ToLower(l.Format) {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogFormat, l.Format)
}

func (k Kafka) validate() error {
	if k.Enabled() && strings.TrimSpace(k.Topic) == "" {
		return fmt.Errorf("%w: %s is required with %s", ErrInvalid, KeyKafkaTopic, KeyKafkaBrokers)
	}
	return nil
}

func required(key, val string) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalid, key)
	}
	return nil
}

func positive(key string, n int64) error {
	if n <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalid, key)
	}
	return nil
}
