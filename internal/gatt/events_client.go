package gatt

import "github.com/google/uuid"

// ClientEvent is a completion or indication delivered to the GATT client
// handler. The set of implementations is closed.
type ClientEvent interface{ clientEvent() }

// ClientRegistered completes RegisterClient.
type ClientRegistered struct {
	Status   GattStatus
	ClientIf int32
	AppUUID  uuid.UUID
}

// ClientConnected completes Connect.
type ClientConnected struct {
	ConnID   int32
	Status   GattStatus
	ClientIf int32
	Addr     Address
}

// ClientDisconnected completes Disconnect or reports a remote disconnect.
type ClientDisconnected struct {
	ConnID   int32
	Status   GattStatus
	ClientIf int32
	Addr     Address
}

// SearchCompleted completes SearchService and DiscoverServiceByUUID.
type SearchCompleted struct {
	ConnID int32
	Status GattStatus
}

// NotificationRegistered completes RegisterForNotification and
// DeregisterForNotification.
type NotificationRegistered struct {
	ConnID     int32
	Registered int32
	Status     GattStatus
	Handle     uint16
}

// Notified carries a notification or indication from the peer.
type Notified struct {
	ConnID int32
	Params NotifyParams
}

// CharacteristicRead completes ReadCharacteristic.
type CharacteristicRead struct {
	ConnID int32
	Status GattStatus
	Params ReadParams
}

// CharacteristicWritten completes WriteCharacteristic.
type CharacteristicWritten struct {
	ConnID int32
	Status GattStatus
	Handle uint16
	Value  []byte
}

// DescriptorRead completes ReadDescriptor.
type DescriptorRead struct {
	ConnID int32
	Status GattStatus
	Params ReadParams
}

// DescriptorWritten completes WriteDescriptor.
type DescriptorWritten struct {
	ConnID int32
	Status GattStatus
	Handle uint16
	Value  []byte
}

// WriteExecuted completes ExecuteWrite.
type WriteExecuted struct {
	ConnID int32
	Status GattStatus
}

// RemoteRSSIRead completes ReadRemoteRSSI.
type RemoteRSSIRead struct {
	ClientIf int32
	Addr     Address
	RSSI     int32
	Status   GattStatus
}

// MTUConfigured completes ConfigureMTU.
type MTUConfigured struct {
	ConnID int32
	Status GattStatus
	MTU    int32
}

// ClientCongestion reports a congestion state change on a client link.
type ClientCongestion struct {
	ConnID    int32
	Congested bool
}

// GattDBRetrieved completes GetGattDB.
type GattDBRetrieved struct {
	ConnID int32
	DB     []DBElement
	Count  int32
}

// ClientPhyUpdated reports a PHY change on a client link.
type ClientPhyUpdated struct {
	ConnID int32
	TxPhy  uint8
	RxPhy  uint8
	Status GattStatus
}

// ClientConnUpdated reports new connection parameters on a client link.
type ClientConnUpdated struct {
	ConnID   int32
	Interval uint16
	Latency  uint16
	Timeout  uint16
	Status   GattStatus
}

// ServiceChanged reports a Service Changed indication from the peer.
type ServiceChanged struct {
	ConnID int32
}

// PhyRead completes ReadPhy.
type PhyRead struct {
	ClientIf int32
	Addr     Address
	TxPhy    uint8
	RxPhy    uint8
	Status   GattStatus
}

func (ClientRegistered) clientEvent()       {}
func (ClientConnected) clientEvent()        {}
func (ClientDisconnected) clientEvent()     {}
func (SearchCompleted) clientEvent()        {}
func (NotificationRegistered) clientEvent() {}
func (Notified) clientEvent()               {}
func (CharacteristicRead) clientEvent()     {}
func (CharacteristicWritten) clientEvent()  {}
func (DescriptorRead) clientEvent()         {}
func (DescriptorWritten) clientEvent()      {}
func (WriteExecuted) clientEvent()          {}
func (RemoteRSSIRead) clientEvent()         {}
func (MTUConfigured) clientEvent()          {}
func (ClientCongestion) clientEvent()       {}
func (GattDBRetrieved) clientEvent()        {}
func (ClientPhyUpdated) clientEvent()       {}
func (ClientConnUpdated) clientEvent()      {}
func (ServiceChanged) clientEvent()         {}
func (PhyRead) clientEvent()                {}
