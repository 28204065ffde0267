package archive2

// Message2 is RDA Status Data (User 3.2.4.6): metadata-only enrichment kept
// alongside the radial stream. It never participates in cut construction.
type Message2 struct {
	RDAStatus                       uint16
	OperabilityStatus               uint16
	ControlStatus                   uint16
	AuxPowerGeneratorState          uint16
	AvgTxPower                      uint16
	HorizRefCalibCorr               uint16
	DataTxEnabled                   uint16
	VolumeCoveragePatternNum        uint16
	RDAControlAuth                  uint16
	RDABuild                        uint16
	OperationalMode                 uint16
	SuperResStatus                  uint16
	ClutterMitigationDecisionStatus uint16
	AvsetStatus                     uint16
	RDAAlarmSummary                 uint16
	CommandAck                      uint16
	ChannelControlStatus            uint16
	SpotBlankingStatus              uint16
	BypassMapGenDate                uint16
	BypassMapGenTime                uint16
	ClutterFilterMapGenDate         uint16
	ClutterFilterMapGenTime         uint16
	VertRefCalibCorr                uint16
	TransitionPwrSourceStatus       uint16
	RMSControlStatus                uint16
	PerformanceCheckStatus          uint16
	AlarmCodes                      uint16
}

// decodeMessage2 reads the fixed-width RDA status fields from payload,
// ignoring the trailing 20 spare bytes of the record.
func decodeMessage2(payload []byte) (Message2, error) {
	c := NewCursor(payload)
	var m Message2

	fields := []*uint16{
		&m.RDAStatus, &m.OperabilityStatus, &m.ControlStatus,
		&m.AuxPowerGeneratorState, &m.AvgTxPower, &m.HorizRefCalibCorr,
		&m.DataTxEnabled, &m.VolumeCoveragePatternNum, &m.RDAControlAuth,
		&m.RDABuild, &m.OperationalMode, &m.SuperResStatus,
		&m.ClutterMitigationDecisionStatus, &m.AvsetStatus, &m.RDAAlarmSummary,
		&m.CommandAck, &m.ChannelControlStatus, &m.SpotBlankingStatus,
		&m.BypassMapGenDate, &m.BypassMapGenTime, &m.ClutterFilterMapGenDate,
		&m.ClutterFilterMapGenTime, &m.VertRefCalibCorr, &m.TransitionPwrSourceStatus,
		&m.RMSControlStatus, &m.PerformanceCheckStatus, &m.AlarmCodes,
	}
	for _, f := range fields {
		v, err := c.U16()
		if err != nil {
			return m, err
		}
		*f = v
	}

	return m, nil
}

// BuildNumber decodes the RDA software build number, stored as the value
// scaled by 100 (e.g. 1900 -> build 19.00).
func (m Message2) BuildNumber() float32 {
	return float32(m.RDABuild) / 100
}

// rdaStatusName renders the small enum RDAStatus carries (User 3.2.4.6 table).
func rdaStatusName(v uint16) string {
	switch v {
	case 1:
		return "startup"
	case 2:
		return "standby"
	case 3:
		return "restart"
	case 4:
		return "operate"
	case 5:
		return "spare"
	case 6:
		return "offline-operate"
	default:
		return "unknown"
	}
}

// RDAStatusName is the human-readable RDAStatus value.
func (m Message2) RDAStatusName() string { return rdaStatusName(m.RDAStatus) }
