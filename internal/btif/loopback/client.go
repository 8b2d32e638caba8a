package loopback

import "gattshim/internal/btif"

// attrNotFound is the GATT status reported for reads of unknown handles.
const attrNotFound = 0x0A

type clientIface struct{ s *Stack }

var _ btif.ClientInterface = clientIface{}

func (c clientIface) RegisterClient(appUUID *btif.RawUUID, eattSupport bool) int32 {
	u := *appUUID
	rc := c.s.record("RegisterClient", u, eattSupport)
	if rc != btif.StatusSuccess {
		return rc
	}
	id := c.s.allocIf()
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.RegisterClient == nil {
			return false
		}
		uu := u
		cb.RegisterClient(0, id, &uu)
		uu = btif.RawUUID{}
		return true
	})
	return rc
}

func (c clientIface) UnregisterClient(clientIf int32) int32 {
	return c.s.record("UnregisterClient", clientIf)
}

func (c clientIface) Connect(clientIf int32, bda *btif.RawAddress, isDirect bool, transport int32, opportunistic bool, initiatingPhys int32) int32 {
	addr := *bda
	rc := c.s.record("Connect", clientIf, addr, isDirect, transport, opportunistic, initiatingPhys)
	if rc != btif.StatusSuccess {
		return rc
	}
	connID := c.s.connFor(addr)
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.Open == nil {
			return false
		}
		a := addr
		cb.Open(connID, 0, clientIf, &a)
		a = btif.RawAddress{}
		return true
	})
	return rc
}

func (c clientIface) Disconnect(clientIf int32, bda *btif.RawAddress, connID int32) int32 {
	addr := *bda
	rc := c.s.record("Disconnect", clientIf, addr, connID)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.dropConn(addr)
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.Close == nil {
			return false
		}
		a := addr
		cb.Close(connID, 0, clientIf, &a)
		return true
	})
	return rc
}

func (c clientIface) Refresh(clientIf int32, bda *btif.RawAddress) int32 {
	return c.s.record("Refresh", clientIf, *bda)
}

func (c clientIface) SearchService(connID int32, filterUUID *btif.RawUUID) int32 {
	var filter any
	if filterUUID != nil {
		filter = *filterUUID
	}
	rc := c.s.record("SearchService", connID, filter)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.searchComplete(connID)
	return rc
}

func (c clientIface) searchComplete(connID int32) {
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.SearchComplete == nil {
			return false
		}
		cb.SearchComplete(connID, 0)
		return true
	})
}

func (c clientIface) DiscoverServiceByUUID(connID int32, uuid *btif.RawUUID) {
	c.s.record("DiscoverServiceByUUID", connID, *uuid)
	c.searchComplete(connID)
}

func (c clientIface) readParams(handle uint16) (*btif.ReadParams, int32) {
	v, ok := c.s.Attribute(handle)
	p := &btif.ReadParams{Handle: handle}
	if !ok {
		p.Status = attrNotFound
		return p, attrNotFound
	}
	p.Value.Len = uint16(copy(p.Value.Value[:], v))
	return p, 0
}

func (c clientIface) ReadCharacteristic(connID int32, handle uint16, authReq int32) int32 {
	rc := c.s.record("ReadCharacteristic", connID, handle, authReq)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ReadCharacteristic == nil {
			return false
		}
		p, status := c.readParams(handle)
		cb.ReadCharacteristic(connID, status, p)
		*p = btif.ReadParams{}
		return true
	})
	return rc
}

func (c clientIface) ReadUsingCharacteristicUUID(connID int32, uuid *btif.RawUUID, startHandle, endHandle uint16, authReq int32) int32 {
	rc := c.s.record("ReadUsingCharacteristicUUID", connID, *uuid, startHandle, endHandle, authReq)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ReadCharacteristic == nil {
			return false
		}
		p, status := c.readParams(startHandle)
		cb.ReadCharacteristic(connID, status, p)
		*p = btif.ReadParams{}
		return true
	})
	return rc
}

func (c clientIface) WriteCharacteristic(connID int32, handle uint16, writeType, authReq int32, value *byte, length uintptr) int32 {
	v := copyIn(value, length)
	rc := c.s.record("WriteCharacteristic", connID, handle, writeType, authReq, v)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.SetAttribute(handle, v)
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.WriteCharacteristic == nil {
			return false
		}
		lend(append([]byte(nil), v...), func(p *byte, n uintptr) {
			cb.WriteCharacteristic(connID, 0, handle, uint16(n), p)
		})
		return true
	})
	return rc
}

func (c clientIface) ReadDescriptor(connID int32, handle uint16, authReq int32) int32 {
	rc := c.s.record("ReadDescriptor", connID, handle, authReq)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ReadDescriptor == nil {
			return false
		}
		p, status := c.readParams(handle)
		cb.ReadDescriptor(connID, status, p)
		*p = btif.ReadParams{}
		return true
	})
	return rc
}

func (c clientIface) WriteDescriptor(connID int32, handle uint16, authReq int32, value *byte, length uintptr) int32 {
	v := copyIn(value, length)
	rc := c.s.record("WriteDescriptor", connID, handle, authReq, v)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.SetAttribute(handle, v)
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.WriteDescriptor == nil {
			return false
		}
		lend(append([]byte(nil), v...), func(p *byte, n uintptr) {
			cb.WriteDescriptor(connID, 0, handle, uint16(n), p)
		})
		return true
	})
	return rc
}

func (c clientIface) ExecuteWrite(connID, execute int32) int32 {
	rc := c.s.record("ExecuteWrite", connID, execute)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ExecuteWrite == nil {
			return false
		}
		cb.ExecuteWrite(connID, 0)
		return true
	})
	return rc
}

func (c clientIface) notificationReg(op string, registered int32, clientIf int32, bda *btif.RawAddress, handle uint16) int32 {
	addr := *bda
	rc := c.s.record(op, clientIf, addr, handle)
	if rc != btif.StatusSuccess {
		return rc
	}
	connID := c.s.connFor(addr)
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.RegisterForNotification == nil {
			return false
		}
		cb.RegisterForNotification(connID, registered, 0, handle)
		return true
	})
	return rc
}

func (c clientIface) RegisterForNotification(clientIf int32, bda *btif.RawAddress, handle uint16) int32 {
	return c.notificationReg("RegisterForNotification", 1, clientIf, bda, handle)
}

func (c clientIface) DeregisterForNotification(clientIf int32, bda *btif.RawAddress, handle uint16) int32 {
	return c.notificationReg("DeregisterForNotification", 0, clientIf, bda, handle)
}

func (c clientIface) ReadRemoteRSSI(clientIf int32, bda *btif.RawAddress) int32 {
	addr := *bda
	rc := c.s.record("ReadRemoteRSSI", clientIf, addr)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ReadRemoteRSSI == nil {
			return false
		}
		a := addr
		cb.ReadRemoteRSSI(clientIf, &a, -50, 0)
		return true
	})
	return rc
}

func (c clientIface) GetDeviceType(bda *btif.RawAddress) int32 {
	c.s.record("GetDeviceType", *bda)
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if v, ok := c.s.returns["GetDeviceType"]; ok {
		return v
	}
	return DeviceTypeLE
}

func (c clientIface) ConfigureMTU(connID, mtu int32) int32 {
	rc := c.s.record("ConfigureMTU", connID, mtu)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ConfigureMTU == nil {
			return false
		}
		cb.ConfigureMTU(connID, 0, mtu)
		return true
	})
	return rc
}

func (c clientIface) ConnParameterUpdate(bda *btif.RawAddress, minInterval, maxInterval, latency, timeout int32, minCELen, maxCELen uint16) int32 {
	addr := *bda
	rc := c.s.record("ConnParameterUpdate", addr, minInterval, maxInterval, latency, timeout, minCELen, maxCELen)
	if rc != btif.StatusSuccess {
		return rc
	}
	connID := c.s.connFor(addr)
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ConnUpdated == nil {
			return false
		}
		cb.ConnUpdated(connID, uint16(maxInterval), uint16(latency), uint16(timeout), 0)
		return true
	})
	return rc
}

func (c clientIface) SetPreferredPhy(bda *btif.RawAddress, txPhy, rxPhy uint8, phyOptions uint16) int32 {
	addr := *bda
	rc := c.s.record("ClientSetPreferredPhy", addr, txPhy, rxPhy, phyOptions)
	if rc != btif.StatusSuccess {
		return rc
	}
	connID := c.s.connFor(addr)
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.PhyUpdated == nil {
			return false
		}
		cb.PhyUpdated(connID, txPhy, rxPhy, 0)
		return true
	})
	return rc
}

func (c clientIface) ReadPhy(clientIf int32, addr btif.RawAddress) int32 {
	rc := c.s.record("ReadPhy", clientIf, addr)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.ReadPhy == nil {
			return false
		}
		cb.ReadPhy(clientIf, addr, 2, 2, 0)
		return true
	})
	return rc
}

func (c clientIface) TestCommand(command int32, params *btif.TestParams) int32 {
	var p btif.TestParams
	if params != nil {
		p = *params
		if p.BDA1 != nil {
			a := *p.BDA1
			p.BDA1 = &a
		}
		if p.UUID1 != nil {
			u := *p.UUID1
			p.UUID1 = &u
		}
	}
	return c.s.record("TestCommand", command, p)
}

func (c clientIface) GetGattDB(connID int32) int32 {
	rc := c.s.record("GetGattDB", connID)
	if rc != btif.StatusSuccess {
		return rc
	}
	c.s.client(func(cb *btif.ClientCallbacks) bool {
		if cb.GetGattDB == nil {
			return false
		}
		c.s.mu.Lock()
		db := append([]btif.DbElement(nil), c.s.db...)
		c.s.mu.Unlock()
		var first *btif.DbElement
		if len(db) > 0 {
			first = &db[0]
		}
		cb.GetGattDB(connID, first, int32(len(db)))
		for i := range db {
			db[i] = btif.DbElement{}
		}
		return true
	})
	return rc
}
