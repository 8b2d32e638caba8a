package gatt

import (
	"github.com/google/uuid"

	"gattshim/internal/btif"
)

// Server forwards GATT server operations to the native stack.
type Server struct {
	iface btif.ServerInterface
	c     caller
}

// RegisterServer registers an application; ServerRegistered carries the server interface id.
func (g *Server) RegisterServer(appUUID uuid.UUID, eattSupport bool) BtStatus {
	return g.c.status("RegisterServer", g.iface.RegisterServer(rawUUID(appUUID), eattSupport))
}

// UnregisterServer releases serverIf. No event follows.
func (g *Server) UnregisterServer(serverIf int32) BtStatus {
	return g.c.status("UnregisterServer", g.iface.UnregisterServer(serverIf))
}

// Connect starts a connection to addr; ServerConnection reports it.
func (g *Server) Connect(serverIf int32, addr Address, isDirect bool, transport int32) BtStatus {
	return g.c.status("Connect", g.iface.Connect(serverIf, rawAddr(addr), isDirect, transport))
}

// Disconnect closes connID; ServerConnection reports it with Connected 0.
func (g *Server) Disconnect(serverIf int32, addr Address, connID int32) BtStatus {
	return g.c.status("Disconnect", g.iface.Disconnect(serverIf, rawAddr(addr), connID))
}

// AddService publishes service, its declaration first. ServiceAdded echoes
// the elements with their assigned handles.
func (g *Server) AddService(serverIf int32, service []DBElement) BtStatus {
	elems := make([]btif.DbElement, len(service))
	for i := range service {
		elems[i] = service[i].raw()
	}
	var first *btif.DbElement
	if len(elems) > 0 {
		first = &elems[0]
	}
	return g.c.status("AddService", g.iface.AddService(serverIf, first, uintptr(len(elems))))
}

// StopService stops serving a service; ServiceStopped follows.
func (g *Server) StopService(serverIf, serviceHandle int32) BtStatus {
	return g.c.status("StopService", g.iface.StopService(serverIf, serviceHandle))
}

// DeleteService removes a service; ServiceDeleted follows.
func (g *Server) DeleteService(serverIf, serviceHandle int32) BtStatus {
	return g.c.status("DeleteService", g.iface.DeleteService(serverIf, serviceHandle))
}

// SendIndication sends a notification or indication of value, borrowed for the call only; IndicationSent follows.
func (g *Server) SendIndication(serverIf, attributeHandle, connID, confirm int32, value []byte) BtStatus {
	p, n := borrow(value)
	return g.c.status("SendIndication", g.iface.SendIndication(serverIf, attributeHandle, connID, confirm, p, n))
}

// SendResponse answers the peer request transID. A value longer than the
// native attribute buffer is rejected without a native call.
func (g *Server) SendResponse(connID, transID int32, status GattStatus, resp Response) BtStatus {
	if len(resp.Value) > btif.GattMaxAttrLen {
		facadeCallsTotal.WithLabelValues(g.c.iface, "SendResponse", BtParmInvalid.String()).Inc()
		return BtParmInvalid
	}
	r := btif.Response{Handle: resp.Handle}
	r.AttrValue.Handle = resp.Handle
	r.AttrValue.Offset = resp.Offset
	r.AttrValue.AuthReq = resp.AuthReq
	r.AttrValue.Len = uint16(copy(r.AttrValue.Value[:], resp.Value))
	return g.c.status("SendResponse", g.iface.SendResponse(connID, transID, int32(status), &r))
}

// SetPreferredPhy requests a PHY change; ServerPhyUpdated follows.
func (g *Server) SetPreferredPhy(addr Address, txPhy, rxPhy uint8, phyOptions uint16) BtStatus {
	return g.c.status("SetPreferredPhy", g.iface.SetPreferredPhy(rawAddr(addr), txPhy, rxPhy, phyOptions))
}
