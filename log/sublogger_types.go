package log

// Global vars related to the logger package
var (
	Global *SubLogger

	ConfigMgr    *SubLogger
	RequestSys   *SubLogger
	ExchangeSys  *SubLogger
	TransportSys *SubLogger
)

// register all loggers at package init()
func init() {
	Global = registerNewSubLogger("LOG")

	ConfigMgr = registerNewSubLogger("CONFIG")
	RequestSys = registerNewSubLogger("REQUESTER")
	ExchangeSys = registerNewSubLogger("EXCHANGE")
	TransportSys = registerNewSubLogger("TRANSPORT")
}
