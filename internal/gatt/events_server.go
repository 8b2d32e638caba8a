package gatt

import "github.com/google/uuid"

// ServerEvent is a completion or peer request delivered to the GATT server
// handler. The set of implementations is closed.
type ServerEvent interface{ serverEvent() }

type ServerRegistered struct {
	Status   GattStatus
	ServerIf int32
	AppUUID  uuid.UUID
}

type ServerConnection struct {
	ConnID    int32
	ServerIf  int32
	Connected int32
	Addr      Address
}

// ServiceAdded echoes the service with the handles the stack assigned.
type ServiceAdded struct {
	Status   GattStatus
	ServerIf int32
	Service  []DBElement
	Count    int
}

type ServiceStopped struct {
	Status        GattStatus
	ServerIf      int32
	ServiceHandle int32
}

type ServiceDeleted struct {
	Status        GattStatus
	ServerIf      int32
	ServiceHandle int32
}

// ReadRequested is a peer read of a local attribute. Descriptor tells
// characteristic and descriptor reads apart.
type ReadRequested struct {
	ConnID     int32
	TransID    int32
	Addr       Address
	AttrHandle int32
	Offset     int32
	IsLong     bool
	Descriptor bool
}

// WriteRequested is a peer write of a local attribute.
type WriteRequested struct {
	ConnID     int32
	TransID    int32
	Addr       Address
	AttrHandle int32
	Offset     int32
	NeedRsp    bool
	IsPrep     bool
	Value      []byte
	Length     int
	Descriptor bool
}

type ExecWriteRequested struct {
	ConnID    int32
	TransID   int32
	Addr      Address
	ExecWrite int32
}

type ResponseConfirmed struct {
	Status GattStatus
	Handle int32
}

type IndicationSent struct {
	ConnID int32
	Status GattStatus
}

type ServerCongestion struct {
	ConnID    int32
	Congested bool
}

type MTUChanged struct {
	ConnID int32
	MTU    int32
}

type ServerPhyUpdated struct {
	ConnID int32
	TxPhy  uint8
	RxPhy  uint8
	Status GattStatus
}

type ServerConnUpdated struct {
	ConnID   int32
	Interval uint16
	Latency  uint16
	Timeout  uint16
	Status   GattStatus
}

func (ServerRegistered) serverEvent()   {}
func (ServerConnection) serverEvent()   {}
func (ServiceAdded) serverEvent()       {}
func (ServiceStopped) serverEvent()     {}
func (ServiceDeleted) serverEvent()     {}
func (ReadRequested) serverEvent()      {}
func (WriteRequested) serverEvent()     {}
func (ExecWriteRequested) serverEvent() {}
func (ResponseConfirmed) serverEvent()  {}
func (IndicationSent) serverEvent()     {}
func (ServerCongestion) serverEvent()   {}
func (MTUChanged) serverEvent()         {}
func (ServerPhyUpdated) serverEvent()   {}
func (ServerConnUpdated) serverEvent()  {}
