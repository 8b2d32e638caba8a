package gatt

import (
	"github.com/google/uuid"

	"gattshim/internal/btif"
)

// Client forwards GATT client operations to the native stack. Results of
// stateful operations arrive later as ClientEvents; the returned BtStatus
// only says whether the request was accepted.
type Client struct {
	iface btif.ClientInterface
	c     caller
}

// RegisterClient registers an application; ClientRegistered carries the client interface id.
func (g *Client) RegisterClient(appUUID uuid.UUID, eattSupport bool) BtStatus {
	return g.c.status("RegisterClient", g.iface.RegisterClient(rawUUID(appUUID), eattSupport))
}

// UnregisterClient releases clientIf. No event follows.
func (g *Client) UnregisterClient(clientIf int32) BtStatus {
	return g.c.status("UnregisterClient", g.iface.UnregisterClient(clientIf))
}

// Connect starts a connection; ClientConnected reports the outcome.
func (g *Client) Connect(clientIf int32, addr Address, isDirect bool, transport int32, opportunistic bool, initiatingPhys int32) BtStatus {
	return g.c.status("Connect", g.iface.Connect(clientIf, rawAddr(addr), isDirect, transport, opportunistic, initiatingPhys))
}

// Disconnect closes connID; ClientDisconnected reports it.
func (g *Client) Disconnect(clientIf int32, addr Address, connID int32) BtStatus {
	return g.c.status("Disconnect", g.iface.Disconnect(clientIf, rawAddr(addr), connID))
}

// Refresh drops the cached database of addr. No event follows.
func (g *Client) Refresh(clientIf int32, addr Address) BtStatus {
	return g.c.status("Refresh", g.iface.Refresh(clientIf, rawAddr(addr)))
}

// SearchService discovers services on connID, all of them when filter is nil.
func (g *Client) SearchService(connID int32, filter *uuid.UUID) BtStatus {
	var f *btif.RawUUID
	if filter != nil {
		f = rawUUID(*filter)
	}
	return g.c.status("SearchService", g.iface.SearchService(connID, f))
}

// DiscoverServiceByUUID searches for one service; SearchCompleted reports the end. The native call returns nothing.
func (g *Client) DiscoverServiceByUUID(connID int32, u uuid.UUID) {
	g.iface.DiscoverServiceByUUID(connID, rawUUID(u))
	g.c.issued("DiscoverServiceByUUID")
}

// ReadCharacteristic reads handle; CharacteristicRead carries the value.
func (g *Client) ReadCharacteristic(connID int32, handle uint16, authReq int32) BtStatus {
	return g.c.status("ReadCharacteristic", g.iface.ReadCharacteristic(connID, handle, authReq))
}

// ReadUsingCharacteristicUUID reads by type within a handle range; CharacteristicRead carries the value.
func (g *Client) ReadUsingCharacteristicUUID(connID int32, u uuid.UUID, startHandle, endHandle uint16, authReq int32) BtStatus {
	return g.c.status("ReadUsingCharacteristicUUID", g.iface.ReadUsingCharacteristicUUID(connID, rawUUID(u), startHandle, endHandle, authReq))
}

// WriteCharacteristic writes value. The native side reads value only during
// the call.
func (g *Client) WriteCharacteristic(connID int32, handle uint16, writeType, authReq int32, value []byte) BtStatus {
	p, n := borrow(value)
	return g.c.status("WriteCharacteristic", g.iface.WriteCharacteristic(connID, handle, writeType, authReq, p, n))
}

// ReadDescriptor reads a descriptor; DescriptorRead carries the value.
func (g *Client) ReadDescriptor(connID int32, handle uint16, authReq int32) BtStatus {
	return g.c.status("ReadDescriptor", g.iface.ReadDescriptor(connID, handle, authReq))
}

// WriteDescriptor writes value, borrowed for the call only; DescriptorWritten follows.
func (g *Client) WriteDescriptor(connID int32, handle uint16, authReq int32, value []byte) BtStatus {
	p, n := borrow(value)
	return g.c.status("WriteDescriptor", g.iface.WriteDescriptor(connID, handle, authReq, p, n))
}

// ExecuteWrite commits or cancels queued prepared writes; WriteExecuted follows.
func (g *Client) ExecuteWrite(connID, execute int32) BtStatus {
	return g.c.status("ExecuteWrite", g.iface.ExecuteWrite(connID, execute))
}

// RegisterForNotification subscribes to handle; NotificationRegistered follows, then Notified per value.
func (g *Client) RegisterForNotification(clientIf int32, addr Address, handle uint16) BtStatus {
	return g.c.status("RegisterForNotification", g.iface.RegisterForNotification(clientIf, rawAddr(addr), handle))
}

// DeregisterForNotification cancels a subscription; NotificationRegistered follows with Registered 0.
func (g *Client) DeregisterForNotification(clientIf int32, addr Address, handle uint16) BtStatus {
	return g.c.status("DeregisterForNotification", g.iface.DeregisterForNotification(clientIf, rawAddr(addr), handle))
}

// ReadRemoteRSSI asks for the link RSSI; RemoteRSSIRead carries it.
func (g *Client) ReadRemoteRSSI(clientIf int32, addr Address) BtStatus {
	return g.c.status("ReadRemoteRSSI", g.iface.ReadRemoteRSSI(clientIf, rawAddr(addr)))
}

// GetDeviceType returns the raw device type the stack reports for addr. It
// is not a status code.
func (g *Client) GetDeviceType(addr Address) int32 {
	t := g.iface.GetDeviceType(rawAddr(addr))
	g.c.issued("GetDeviceType")
	return t
}

// ConfigureMTU requests an ATT MTU; MTUConfigured carries the agreed value.
func (g *Client) ConfigureMTU(connID, mtu int32) BtStatus {
	return g.c.status("ConfigureMTU", g.iface.ConfigureMTU(connID, mtu))
}

// ConnParameterUpdate requests new connection parameters; ClientConnUpdated follows.
func (g *Client) ConnParameterUpdate(addr Address, minInterval, maxInterval, latency, timeout int32, minCELen, maxCELen uint16) BtStatus {
	return g.c.status("ConnParameterUpdate", g.iface.ConnParameterUpdate(rawAddr(addr), minInterval, maxInterval, latency, timeout, minCELen, maxCELen))
}

// SetPreferredPhy requests a PHY change; ClientPhyUpdated follows.
func (g *Client) SetPreferredPhy(addr Address, txPhy, rxPhy uint8, phyOptions uint16) BtStatus {
	return g.c.status("SetPreferredPhy", g.iface.SetPreferredPhy(rawAddr(addr), txPhy, rxPhy, phyOptions))
}

// ReadPhy goes through the client shim; PhyRead carries the result.
func (g *Client) ReadPhy(clientIf int32, addr Address) BtStatus {
	return g.c.status("ReadPhy", g.iface.ReadPhy(clientIf, addr.raw()))
}

// TestCommand forwards a vendor test command. No event follows.
func (g *Client) TestCommand(command int32, params TestParams) BtStatus {
	p := btif.TestParams{U1: params.U1, U2: params.U2, U3: params.U3, U4: params.U4, U5: params.U5}
	if params.Addr != nil {
		p.BDA1 = rawAddr(*params.Addr)
	}
	if params.UUID != nil {
		p.UUID1 = rawUUID(*params.UUID)
	}
	return g.c.status("TestCommand", g.iface.TestCommand(command, &p))
}

// GetGattDB asks for the discovered database; GattDBRetrieved carries it.
func (g *Client) GetGattDB(connID int32) BtStatus {
	return g.c.status("GetGattDB", g.iface.GetGattDB(connID))
}
