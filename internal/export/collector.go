// Package export exposes PM table readings as Prometheus metrics.
package export

import (
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zenmetrics/zenmon/internal/smu"
)

const namespace = "zenmon"

// Collector reads the PM table on every scrape. A failed read reports
// zenmon_up 0 and no sample metrics; it never aborts the scrape.
type Collector struct {
	reader *smu.Reader
	logger *slog.Logger

	up           *prometheus.Desc
	limit        *prometheus.Desc
	value        *prometheus.Desc
	temp         *prometheus.Desc
	power        *prometheus.Desc
	voltage      *prometheus.Desc
	clock        *prometheus.Desc
	coreTemp     *prometheus.Desc
	corePower    *prometheus.Desc
	coreClock    *prometheus.Desc
	coreClockEff *prometheus.Desc
	coreC0       *prometheus.Desc
}

func NewCollector(reader *smu.Reader, logger *slog.Logger) *Collector {
	familyLabels := []string{"codename"}
	return &Collector{
		reader: reader,
		logger: logger.With(slog.String("collector", "pmtable")),

		up: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "up"),
			"1 if the last PM table read succeeded", nil, nil),
		limit: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "tracking_limit"),
			"Package tracking limit (PPT in W, TDC/EDC in A, THM in °C)",
			append([]string{"kind"}, familyLabels...), nil),
		value: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "tracking_value"),
			"Current value against a package tracking limit",
			append([]string{"kind"}, familyLabels...), nil),
		temp: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "temperature_celsius"),
			"Package temperature sensor",
			append([]string{"sensor"}, familyLabels...), nil),
		power: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "power_watts"),
			"Package power rail",
			append([]string{"rail"}, familyLabels...), nil),
		voltage: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "voltage_volts"),
			"Package voltage rail",
			append([]string{"rail"}, familyLabels...), nil),
		clock: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "clock_mhz"),
			"Package clock domain",
			append([]string{"domain"}, familyLabels...), nil),
		coreTemp: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "core_temperature_celsius"),
			"Per-core temperature",
			append([]string{"core"}, familyLabels...), nil),
		corePower: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "core_power_watts"),
			"Per-core power",
			append([]string{"core"}, familyLabels...), nil),
		coreClock: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "core_clock_mhz"),
			"Per-core frequency",
			append([]string{"core"}, familyLabels...), nil),
		coreClockEff: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "core_effective_clock_mhz"),
			"Per-core effective frequency",
			append([]string{"core"}, familyLabels...), nil),
		coreC0: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "core_c0_residency_percent"),
			"Per-core C0 (active state) residency",
			append([]string{"core"}, familyLabels...), nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.limit
	ch <- c.value
	ch <- c.temp
	ch <- c.power
	ch <- c.voltage
	ch <- c.clock
	ch <- c.coreTemp
	ch <- c.corePower
	ch <- c.coreClock
	ch <- c.coreClockEff
	ch <- c.coreC0
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	r, err := c.reader.Read()
	if err != nil {
		c.logger.Error("PM table read failed", slog.Any("error", err))
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)

	fam := r.FamilyName
	gauge := func(desc *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v, append(labels, fam)...)
	}

	gauge(c.limit, r.PPTLimit, "ppt")
	gauge(c.limit, r.TDCLimit, "tdc")
	gauge(c.limit, r.EDCLimit, "edc")
	gauge(c.limit, r.THMLimit, "thm")
	gauge(c.value, r.PPTValue, "ppt")
	gauge(c.value, r.TDCValue, "tdc")
	gauge(c.value, r.EDCValue, "edc")
	gauge(c.value, r.Tctl, "thm")

	gauge(c.temp, r.Tctl, "tctl")
	gauge(c.temp, r.SocTemp, "soc")
	gauge(c.power, r.PackagePower, "package")
	gauge(c.power, r.SocPower, "soc")
	gauge(c.voltage, r.CoreVoltage, "core")
	gauge(c.voltage, r.SocVoltage, "soc")
	gauge(c.clock, r.FCLK, "fclk")
	gauge(c.clock, r.MCLK, "mclk")

	for i, v := range r.CoreTemps {
		gauge(c.coreTemp, v, strconv.Itoa(i))
	}
	for i, v := range r.CorePower {
		gauge(c.corePower, v, strconv.Itoa(i))
	}
	for i, v := range r.CoreFreqs {
		gauge(c.coreClock, v, strconv.Itoa(i))
	}
	for i, v := range r.CoreFreqsEff {
		gauge(c.coreClockEff, v, strconv.Itoa(i))
	}
	for i, v := range r.CoreC0 {
		gauge(c.coreC0, v, strconv.Itoa(i))
	}
}
