//go:build btif && cgo

package btif

// cgo link directives for the native profile shim.
// - rpath $ORIGIN lets the loader find libgattshim.so next to the binary.
// - -L${SRCDIR}/../../bin resolves it at link time for local builds.

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo LDFLAGS: -Wl,-rpath,'$ORIGIN' -L${SRCDIR}/../../bin -lgattshim
#include <stdlib.h>
#include <string.h>
#include "gattshim.h"

// Exported from native_export.go.
extern void goGattcRegisterClient(int, int, gs_uuid_t*);
extern void goGattcOpen(int, int, int, gs_raw_address_t*);
extern void goGattcClose(int, int, int, gs_raw_address_t*);
extern void goGattcSearchComplete(int, int);
extern void goGattcRegisterForNotification(int, int, int, uint16_t);
extern void goGattcNotify(int, gs_notify_params_t*);
extern void goGattcReadCharacteristic(int, int, gs_read_params_t*);
extern void goGattcWriteCharacteristic(int, int, uint16_t, uint16_t, uint8_t*);
extern void goGattcReadDescriptor(int, int, gs_read_params_t*);
extern void goGattcWriteDescriptor(int, int, uint16_t, uint16_t, uint8_t*);
extern void goGattcExecuteWrite(int, int);
extern void goGattcReadRemoteRssi(int, gs_raw_address_t*, int, int);
extern void goGattcConfigureMtu(int, int, int);
extern void goGattcCongestion(int, _Bool);
extern void goGattcGetGattDb(int, gs_db_element_t*, int);
extern void goGattcServicesRemoved(int, uint16_t, uint16_t);
extern void goGattcServicesAdded(int, gs_db_element_t*, int);
extern void goGattcPhyUpdated(int, uint8_t, uint8_t, uint8_t);
extern void goGattcConnUpdated(int, uint16_t, uint16_t, uint16_t, uint8_t);
extern void goGattcServiceChanged(int);
extern void goGattcReadPhy(int, gs_raw_address_t, uint8_t, uint8_t, uint8_t);

extern void goGattsRegisterServer(int, int, gs_uuid_t*);
extern void goGattsConnection(int, int, int, gs_raw_address_t*);
extern void goGattsServiceAdded(int, int, gs_db_element_t*, size_t);
extern void goGattsServiceStopped(int, int, int);
extern void goGattsServiceDeleted(int, int, int);
extern void goGattsRequestReadCharacteristic(int, int, gs_raw_address_t*, int, int, _Bool);
extern void goGattsRequestReadDescriptor(int, int, gs_raw_address_t*, int, int, _Bool);
extern void goGattsRequestWriteCharacteristic(int, int, gs_raw_address_t*, int, int, _Bool, _Bool, uint8_t*, size_t);
extern void goGattsRequestWriteDescriptor(int, int, gs_raw_address_t*, int, int, _Bool, _Bool, uint8_t*, size_t);
extern void goGattsRequestExecWrite(int, int, gs_raw_address_t*, int);
extern void goGattsResponseConfirmation(int, int);
extern void goGattsIndicationSent(int, int);
extern void goGattsCongestion(int, _Bool);
extern void goGattsMtuChanged(int, int);
extern void goGattsPhyUpdated(int, uint8_t, uint8_t, uint8_t);
extern void goGattsConnUpdated(int, uint16_t, uint16_t, uint16_t, uint8_t);

extern void goScanOnScannerRegistered(gs_uuid_t*, uint8_t, uint8_t);
extern void goScanOnSetScannerParameterComplete(uint8_t, uint8_t);
extern void goScanOnScanResult(uint16_t, uint8_t, gs_raw_address_t*, uint8_t, uint8_t, uint8_t, int8_t, int8_t, uint16_t, uint8_t*, size_t);
extern void goScanOnTrackAdvFoundLost(gs_adv_track_info_t*);
extern void goScanOnBatchScanReports(int, int, int, int, uint8_t*, size_t);
extern void goScanOnBatchScanThresholdCrossed(int);

#define GS_SET(tab, bit, field, fn) \
  if (mask & (1ull << (bit))) (tab)->field = (__typeof__((tab)->field))(fn)

// Tables are allocated on the C heap and never freed: the native side keeps
// raw pointers into them for the rest of the process.
static gs_client_callbacks_t* gs_new_client_callbacks(uint64_t mask) {
  gs_client_callbacks_t* t = calloc(1, sizeof(*t));
  GS_SET(t, 0, register_client_cb, goGattcRegisterClient);
  GS_SET(t, 1, open_cb, goGattcOpen);
  GS_SET(t, 2, close_cb, goGattcClose);
  GS_SET(t, 3, search_complete_cb, goGattcSearchComplete);
  GS_SET(t, 4, register_for_notification_cb, goGattcRegisterForNotification);
  GS_SET(t, 5, notify_cb, goGattcNotify);
  GS_SET(t, 6, read_characteristic_cb, goGattcReadCharacteristic);
  GS_SET(t, 7, write_characteristic_cb, goGattcWriteCharacteristic);
  GS_SET(t, 8, read_descriptor_cb, goGattcReadDescriptor);
  GS_SET(t, 9, write_descriptor_cb, goGattcWriteDescriptor);
  GS_SET(t, 10, execute_write_cb, goGattcExecuteWrite);
  GS_SET(t, 11, read_remote_rssi_cb, goGattcReadRemoteRssi);
  GS_SET(t, 12, configure_mtu_cb, goGattcConfigureMtu);
  GS_SET(t, 13, congestion_cb, goGattcCongestion);
  GS_SET(t, 14, get_gatt_db_cb, goGattcGetGattDb);
  GS_SET(t, 15, services_removed_cb, goGattcServicesRemoved);
  GS_SET(t, 16, services_added_cb, goGattcServicesAdded);
  GS_SET(t, 17, phy_updated_cb, goGattcPhyUpdated);
  GS_SET(t, 18, conn_updated_cb, goGattcConnUpdated);
  GS_SET(t, 19, service_changed_cb, goGattcServiceChanged);
  GS_SET(t, 20, read_phy_cb, goGattcReadPhy);
  return t;
}

static gs_server_callbacks_t* gs_new_server_callbacks(uint64_t mask) {
  gs_server_callbacks_t* t = calloc(1, sizeof(*t));
  GS_SET(t, 0, register_server_cb, goGattsRegisterServer);
  GS_SET(t, 1, connection_cb, goGattsConnection);
  GS_SET(t, 2, service_added_cb, goGattsServiceAdded);
  GS_SET(t, 3, service_stopped_cb, goGattsServiceStopped);
  GS_SET(t, 4, service_deleted_cb, goGattsServiceDeleted);
  GS_SET(t, 5, request_read_characteristic_cb, goGattsRequestReadCharacteristic);
  GS_SET(t, 6, request_read_descriptor_cb, goGattsRequestReadDescriptor);
  GS_SET(t, 7, request_write_characteristic_cb, goGattsRequestWriteCharacteristic);
  GS_SET(t, 8, request_write_descriptor_cb, goGattsRequestWriteDescriptor);
  GS_SET(t, 9, request_exec_write_cb, goGattsRequestExecWrite);
  GS_SET(t, 10, response_confirmation_cb, goGattsResponseConfirmation);
  GS_SET(t, 11, indication_sent_cb, goGattsIndicationSent);
  GS_SET(t, 12, congestion_cb, goGattsCongestion);
  GS_SET(t, 13, mtu_changed_cb, goGattsMtuChanged);
  GS_SET(t, 14, phy_updated_cb, goGattsPhyUpdated);
  GS_SET(t, 15, conn_updated_cb, goGattsConnUpdated);
  return t;
}

// The legacy scanner table carries no Go trampolines; scanning goes through
// the scanner shim.
static gs_scanner_callbacks_t* gs_new_legacy_scanner_callbacks(void) {
  return calloc(1, sizeof(gs_scanner_callbacks_t));
}

static gs_scanning_callbacks_t* gs_new_scanning_callbacks(uint64_t mask) {
  gs_scanning_callbacks_t* t = calloc(1, sizeof(*t));
  GS_SET(t, 0, on_scanner_registered, goScanOnScannerRegistered);
  GS_SET(t, 1, on_set_scanner_parameter_complete, goScanOnSetScannerParameterComplete);
  GS_SET(t, 2, on_scan_result, goScanOnScanResult);
  GS_SET(t, 3, on_track_adv_found_lost, goScanOnTrackAdvFoundLost);
  GS_SET(t, 4, on_batch_scan_reports, goScanOnBatchScanReports);
  GS_SET(t, 5, on_batch_scan_threshold_crossed, goScanOnBatchScanThresholdCrossed);
  return t;
}

static gs_callbacks_t* gs_new_callbacks(size_t size, gs_client_callbacks_t* c,
                                       gs_server_callbacks_t* s,
                                       gs_scanner_callbacks_t* sc) {
  gs_callbacks_t* t = calloc(1, sizeof(*t));
  t->size = size;
  t->client = c;
  t->server = s;
  t->scanner = sc;
  return t;
}

// C function pointers cannot be called from Go directly; one helper per entry.

static int gs_gatt_init(const gs_gatt_interface_t* g, const gs_callbacks_t* cb) { return g->init(cb); }

static int gs_gattc_register_client(const gs_client_interface_t* i, const gs_uuid_t* u, bool eatt) { return i->register_client(u, eatt); }
static int gs_gattc_unregister_client(const gs_client_interface_t* i, int client_if) { return i->unregister_client(client_if); }
static int gs_gattc_connect(const gs_client_interface_t* i, int client_if, const gs_raw_address_t* a, bool direct, int transport, bool opp, int phys) { return i->connect(client_if, a, direct, transport, opp, phys); }
static int gs_gattc_disconnect(const gs_client_interface_t* i, int client_if, const gs_raw_address_t* a, int conn_id) { return i->disconnect(client_if, a, conn_id); }
static int gs_gattc_refresh(const gs_client_interface_t* i, int client_if, const gs_raw_address_t* a) { return i->refresh(client_if, a); }
static int gs_gattc_search_service(const gs_client_interface_t* i, int conn_id, const gs_uuid_t* u) { return i->search_service(conn_id, u); }
static void gs_gattc_discover_service_by_uuid(const gs_client_interface_t* i, int conn_id, const gs_uuid_t* u) { i->discover_service_by_uuid(conn_id, u); }
static int gs_gattc_read_characteristic(const gs_client_interface_t* i, int conn_id, uint16_t h, int auth) { return i->read_characteristic(conn_id, h, auth); }
static int gs_gattc_read_using_characteristic_uuid(const gs_client_interface_t* i, int conn_id, const gs_uuid_t* u, uint16_t s, uint16_t e, int auth) { return i->read_using_characteristic_uuid(conn_id, u, s, e, auth); }
static int gs_gattc_write_characteristic(const gs_client_interface_t* i, int conn_id, uint16_t h, int wt, int auth, const uint8_t* v, size_t n) { return i->write_characteristic(conn_id, h, wt, auth, v, n); }
static int gs_gattc_read_descriptor(const gs_client_interface_t* i, int conn_id, uint16_t h, int auth) { return i->read_descriptor(conn_id, h, auth); }
static int gs_gattc_write_descriptor(const gs_client_interface_t* i, int conn_id, uint16_t h, int auth, const uint8_t* v, size_t n) { return i->write_descriptor(conn_id, h, auth, v, n); }
static int gs_gattc_execute_write(const gs_client_interface_t* i, int conn_id, int execute) { return i->execute_write(conn_id, execute); }
static int gs_gattc_register_for_notification(const gs_client_interface_t* i, int client_if, const gs_raw_address_t* a, uint16_t h) { return i->register_for_notification(client_if, a, h); }
static int gs_gattc_deregister_for_notification(const gs_client_interface_t* i, int client_if, const gs_raw_address_t* a, uint16_t h) { return i->deregister_for_notification(client_if, a, h); }
static int gs_gattc_read_remote_rssi(const gs_client_interface_t* i, int client_if, const gs_raw_address_t* a) { return i->read_remote_rssi(client_if, a); }
static int gs_gattc_get_device_type(const gs_client_interface_t* i, const gs_raw_address_t* a) { return i->get_device_type(a); }
static int gs_gattc_configure_mtu(const gs_client_interface_t* i, int conn_id, int mtu) { return i->configure_mtu(conn_id, mtu); }
static int gs_gattc_conn_parameter_update(const gs_client_interface_t* i, const gs_raw_address_t* a, int min_i, int max_i, int lat, int to, uint16_t min_ce, uint16_t max_ce) { return i->conn_parameter_update(a, min_i, max_i, lat, to, min_ce, max_ce); }
static int gs_gattc_set_preferred_phy(const gs_client_interface_t* i, const gs_raw_address_t* a, uint8_t tx, uint8_t rx, uint16_t opts) { return i->set_preferred_phy(a, tx, rx, opts); }
static int gs_gattc_read_phy(const gs_client_interface_t* i, int client_if, gs_raw_address_t a) { return i->read_phy(client_if, a); }
static int gs_gattc_test_command(const gs_client_interface_t* i, int command, const gs_test_params_t* p) { return i->test_command(command, p); }
static int gs_gattc_get_gatt_db(const gs_client_interface_t* i, int conn_id) { return i->get_gatt_db(conn_id); }

static int gs_gatts_register_server(const gs_server_interface_t* i, const gs_uuid_t* u, bool eatt) { return i->register_server(u, eatt); }
static int gs_gatts_unregister_server(const gs_server_interface_t* i, int server_if) { return i->unregister_server(server_if); }
static int gs_gatts_connect(const gs_server_interface_t* i, int server_if, const gs_raw_address_t* a, bool direct, int transport) { return i->connect(server_if, a, direct, transport); }
static int gs_gatts_disconnect(const gs_server_interface_t* i, int server_if, const gs_raw_address_t* a, int conn_id) { return i->disconnect(server_if, a, conn_id); }
static int gs_gatts_add_service(const gs_server_interface_t* i, int server_if, const gs_db_element_t* s, size_t n) { return i->add_service(server_if, s, n); }
static int gs_gatts_stop_service(const gs_server_interface_t* i, int server_if, int h) { return i->stop_service(server_if, h); }
static int gs_gatts_delete_service(const gs_server_interface_t* i, int server_if, int h) { return i->delete_service(server_if, h); }
static int gs_gatts_send_indication(const gs_server_interface_t* i, int server_if, int attr, int conn_id, int confirm, const uint8_t* v, size_t n) { return i->send_indication(server_if, attr, conn_id, confirm, v, n); }
static int gs_gatts_send_response(const gs_server_interface_t* i, int conn_id, int trans_id, int status, const gs_response_t* r) { return i->send_response(conn_id, trans_id, status, r); }
static int gs_gatts_set_preferred_phy(const gs_server_interface_t* i, const gs_raw_address_t* a, uint8_t tx, uint8_t rx, uint16_t opts) { return i->set_preferred_phy(a, tx, rx, opts); }

static void gs_scan_register_callbacks(const gs_scanner_interface_t* i, const gs_scanning_callbacks_t* cb) { i->register_callbacks(cb); }
static void gs_scan_register_scanner(const gs_scanner_interface_t* i, const gs_uuid_t* u) { i->register_scanner(u); }
static void gs_scan_unregister(const gs_scanner_interface_t* i, uint8_t id) { i->unregister(id); }
static void gs_scan_scan(const gs_scanner_interface_t* i, bool start) { i->scan(start); }
static void gs_scan_set_scan_parameters(const gs_scanner_interface_t* i, uint8_t id, int interval, int window) { i->set_scan_parameters(id, interval, window); }
static void gs_scan_batchscan_enable(const gs_scanner_interface_t* i, int mode, int interval, int window, int addr_type, int discard) { i->batchscan_enable(mode, interval, window, addr_type, discard); }
static void gs_scan_batchscan_disable(const gs_scanner_interface_t* i) { i->batchscan_disable(); }
static void gs_scan_batchscan_read_reports(const gs_scanner_interface_t* i, uint8_t id, int mode) { i->batchscan_read_reports(id, mode); }

static int gs_adv_register_advertiser(const gs_advertiser_interface_t* i) { return i->register_advertiser(); }
static void gs_adv_unregister(const gs_advertiser_interface_t* i, uint8_t id) { i->unregister(id); }
static int gs_adv_set_data(const gs_advertiser_interface_t* i, uint8_t id, bool scan_rsp, const uint8_t* d, size_t n) { return i->set_data(id, scan_rsp, d, n); }
static int gs_adv_enable(const gs_advertiser_interface_t* i, uint8_t id, bool enable, uint16_t duration, uint8_t max_ext) { return i->enable(id, enable, duration, max_ext); }
*/
import "C"

import (
	"sync/atomic"
	"unsafe"
)

var nativeBuilt = true

// NativeBuilt reports whether Open can reach a native stack in this build.
func NativeBuilt() bool { return nativeBuilt }

// The Go tables the trampolines forward to. They are stored once, before
// the matching C table is handed over, and never replaced.
var (
	installed        atomic.Pointer[Callbacks]
	installedScanCbs atomic.Pointer[ScannerCallbacks]
)

func installedClient() *ClientCallbacks   { return installed.Load().Client }
func installedServer() *ServerCallbacks   { return installed.Load().Server }
func installedScanner() *ScannerCallbacks { return installedScanCbs.Load() }

type nativeStack struct{}

// Open returns the native adapter interface.
func Open() (BluetoothInterface, error) { return nativeStack{}, nil }

func (nativeStack) GetProfileInterface(profile Profile) GattInterface {
	id := C.CString(string(profile))
	defer C.free(unsafe.Pointer(id))
	raw := C.gattshim_get_profile_interface(id)
	if raw == nil {
		return nil
	}
	return &nativeGatt{raw: raw}
}

type nativeGatt struct {
	raw *C.gs_gatt_interface_t
}

func (g *nativeGatt) Init(cb *Callbacks) int32 {
	if cb == nil || !installed.CompareAndSwap(nil, cb) {
		return StatusFail
	}
	var client *C.gs_client_callbacks_t
	if cb.Client != nil {
		client = C.gs_new_client_callbacks(C.uint64_t(clientMask(cb.Client)))
	}
	var server *C.gs_server_callbacks_t
	if cb.Server != nil {
		server = C.gs_new_server_callbacks(C.uint64_t(serverMask(cb.Server)))
	}
	var scanner *C.gs_scanner_callbacks_t
	if cb.Scanner != nil {
		scanner = C.gs_new_legacy_scanner_callbacks()
	}
	top := C.gs_new_callbacks(C.size_t(cb.Size), client, server, scanner)
	return int32(C.gs_gatt_init(g.raw, top))
}

func (g *nativeGatt) Client() ClientInterface {
	return nativeClient{raw: g.raw.client}
}

func (g *nativeGatt) Server() ServerInterface {
	return nativeServer{raw: g.raw.server}
}

func (g *nativeGatt) Scanner() ScannerInterface {
	return nativeScanner{raw: g.raw.scanner}
}

func (g *nativeGatt) Advertiser() AdvertiserInterface {
	return nativeAdvertiser{raw: g.raw.advertiser}
}

func bit(set bool, n uint) uint64 {
	if set {
		return 1 << n
	}
	return 0
}

func clientMask(c *ClientCallbacks) uint64 {
	return bit(c.RegisterClient != nil, 0) |
		bit(c.Open != nil, 1) |
		bit(c.Close != nil, 2) |
		bit(c.SearchComplete != nil, 3) |
		bit(c.RegisterForNotification != nil, 4) |
		bit(c.Notify != nil, 5) |
		bit(c.ReadCharacteristic != nil, 6) |
		bit(c.WriteCharacteristic != nil, 7) |
		bit(c.ReadDescriptor != nil, 8) |
		bit(c.WriteDescriptor != nil, 9) |
		bit(c.ExecuteWrite != nil, 10) |
		bit(c.ReadRemoteRSSI != nil, 11) |
		bit(c.ConfigureMTU != nil, 12) |
		bit(c.Congestion != nil, 13) |
		bit(c.GetGattDB != nil, 14) |
		bit(c.ServicesRemoved != nil, 15) |
		bit(c.ServicesAdded != nil, 16) |
		bit(c.PhyUpdated != nil, 17) |
		bit(c.ConnUpdated != nil, 18) |
		bit(c.ServiceChanged != nil, 19) |
		bit(c.ReadPhy != nil, 20)
}

func serverMask(s *ServerCallbacks) uint64 {
	return bit(s.RegisterServer != nil, 0) |
		bit(s.Connection != nil, 1) |
		bit(s.ServiceAdded != nil, 2) |
		bit(s.ServiceStopped != nil, 3) |
		bit(s.ServiceDeleted != nil, 4) |
		bit(s.RequestReadCharacteristic != nil, 5) |
		bit(s.RequestReadDescriptor != nil, 6) |
		bit(s.RequestWriteCharacteristic != nil, 7) |
		bit(s.RequestWriteDescriptor != nil, 8) |
		bit(s.RequestExecWrite != nil, 9) |
		bit(s.ResponseConfirmation != nil, 10) |
		bit(s.IndicationSent != nil, 11) |
		bit(s.Congestion != nil, 12) |
		bit(s.MTUChanged != nil, 13) |
		bit(s.PhyUpdated != nil, 14) |
		bit(s.ConnUpdated != nil, 15)
}

func scanningMask(s *ScannerCallbacks) uint64 {
	return bit(s.OnScannerRegistered != nil, 0) |
		bit(s.OnSetScannerParameterComplete != nil, 1) |
		bit(s.OnScanResult != nil, 2) |
		bit(s.OnTrackAdvFoundLost != nil, 3) |
		bit(s.OnBatchScanReports != nil, 4) |
		bit(s.OnBatchScanThresholdCrossed != nil, 5)
}

func cAddr(a *RawAddress) *C.gs_raw_address_t { return (*C.gs_raw_address_t)(unsafe.Pointer(a)) }
func cUUID(u *RawUUID) *C.gs_uuid_t             { return (*C.gs_uuid_t)(unsafe.Pointer(u)) }
func cBytes(p *byte) *C.uint8_t                 { return (*C.uint8_t)(unsafe.Pointer(p)) }

func cDbElements(es []DbElement) *C.gs_db_element_t {
	if len(es) == 0 {
		return nil
	}
	out := (*C.gs_db_element_t)(C.calloc(C.size_t(len(es)), C.size_t(unsafe.Sizeof(C.gs_db_element_t{}))))
	dst := unsafe.Slice(out, len(es))
	for i, e := range es {
		d := &dst[i]
		d.id = C.uint16_t(e.ID)
		*rawUUID(&d.uuid) = e.UUID
		d._type = C.int32_t(e.Type)
		d.attribute_handle = C.uint16_t(e.AttributeHandle)
		d.start_handle = C.uint16_t(e.StartHandle)
		d.end_handle = C.uint16_t(e.EndHandle)
		d.properties = C.uint8_t(e.Properties)
		d.extended_properties = C.uint16_t(e.ExtendedProperties)
		d.permissions = C.uint16_t(e.Permissions)
	}
	return out
}

type nativeClient struct{ raw *C.gs_client_interface_t }

func (c nativeClient) RegisterClient(appUUID *RawUUID, eattSupport bool) int32 {
	return int32(C.gs_gattc_register_client(c.raw, cUUID(appUUID), C.bool(eattSupport)))
}

func (c nativeClient) UnregisterClient(clientIf int32) int32 {
	return int32(C.gs_gattc_unregister_client(c.raw, C.int(clientIf)))
}

func (c nativeClient) Connect(clientIf int32, bda *RawAddress, isDirect bool, transport int32, opportunistic bool, initiatingPhys int32) int32 {
	return int32(C.gs_gattc_connect(c.raw, C.int(clientIf), cAddr(bda), C.bool(isDirect), C.int(transport), C.bool(opportunistic), C.int(initiatingPhys)))
}

func (c nativeClient) Disconnect(clientIf int32, bda *RawAddress, connID int32) int32 {
	return int32(C.gs_gattc_disconnect(c.raw, C.int(clientIf), cAddr(bda), C.int(connID)))
}

func (c nativeClient) Refresh(clientIf int32, bda *RawAddress) int32 {
	return int32(C.gs_gattc_refresh(c.raw, C.int(clientIf), cAddr(bda)))
}

func (c nativeClient) SearchService(connID int32, filterUUID *RawUUID) int32 {
	return int32(C.gs_gattc_search_service(c.raw, C.int(connID), cUUID(filterUUID)))
}

func (c nativeClient) DiscoverServiceByUUID(connID int32, uuid *RawUUID) {
	C.gs_gattc_discover_service_by_uuid(c.raw, C.int(connID), cUUID(uuid))
}

func (c nativeClient) ReadCharacteristic(connID int32, handle uint16, authReq int32) int32 {
	return int32(C.gs_gattc_read_characteristic(c.raw, C.int(connID), C.uint16_t(handle), C.int(authReq)))
}

func (c nativeClient) ReadUsingCharacteristicUUID(connID int32, uuid *RawUUID, startHandle, endHandle uint16, authReq int32) int32 {
	return int32(C.gs_gattc_read_using_characteristic_uuid(c.raw, C.int(connID), cUUID(uuid), C.uint16_t(startHandle), C.uint16_t(endHandle), C.int(authReq)))
}

func (c nativeClient) WriteCharacteristic(connID int32, handle uint16, writeType, authReq int32, value *byte, length uintptr) int32 {
	return int32(C.gs_gattc_write_characteristic(c.raw, C.int(connID), C.uint16_t(handle), C.int(writeType), C.int(authReq), cBytes(value), C.size_t(length)))
}

func (c nativeClient) ReadDescriptor(connID int32, handle uint16, authReq int32) int32 {
	return int32(C.gs_gattc_read_descriptor(c.raw, C.int(connID), C.uint16_t(handle), C.int(authReq)))
}

func (c nativeClient) WriteDescriptor(connID int32, handle uint16, authReq int32, value *byte, length uintptr) int32 {
	return int32(C.gs_gattc_write_descriptor(c.raw, C.int(connID), C.uint16_t(handle), C.int(authReq), cBytes(value), C.size_t(length)))
}

func (c nativeClient) ExecuteWrite(connID, execute int32) int32 {
	return int32(C.gs_gattc_execute_write(c.raw, C.int(connID), C.int(execute)))
}

func (c nativeClient) RegisterForNotification(clientIf int32, bda *RawAddress, handle uint16) int32 {
	return int32(C.gs_gattc_register_for_notification(c.raw, C.int(clientIf), cAddr(bda), C.uint16_t(handle)))
}

func (c nativeClient) DeregisterForNotification(clientIf int32, bda *RawAddress, handle uint16) int32 {
	return int32(C.gs_gattc_deregister_for_notification(c.raw, C.int(clientIf), cAddr(bda), C.uint16_t(handle)))
}

func (c nativeClient) ReadRemoteRSSI(clientIf int32, bda *RawAddress) int32 {
	return int32(C.gs_gattc_read_remote_rssi(c.raw, C.int(clientIf), cAddr(bda)))
}

func (c nativeClient) GetDeviceType(bda *RawAddress) int32 {
	return int32(C.gs_gattc_get_device_type(c.raw, cAddr(bda)))
}

func (c nativeClient) ConfigureMTU(connID, mtu int32) int32 {
	return int32(C.gs_gattc_configure_mtu(c.raw, C.int(connID), C.int(mtu)))
}

func (c nativeClient) ConnParameterUpdate(bda *RawAddress, minInterval, maxInterval, latency, timeout int32, minCELen, maxCELen uint16) int32 {
	return int32(C.gs_gattc_conn_parameter_update(c.raw, cAddr(bda), C.int(minInterval), C.int(maxInterval), C.int(latency), C.int(timeout), C.uint16_t(minCELen), C.uint16_t(maxCELen)))
}

func (c nativeClient) SetPreferredPhy(bda *RawAddress, txPhy, rxPhy uint8, phyOptions uint16) int32 {
	return int32(C.gs_gattc_set_preferred_phy(c.raw, cAddr(bda), C.uint8_t(txPhy), C.uint8_t(rxPhy), C.uint16_t(phyOptions)))
}

func (c nativeClient) ReadPhy(clientIf int32, addr RawAddress) int32 {
	return int32(C.gs_gattc_read_phy(c.raw, C.int(clientIf), *cAddr(&addr)))
}

// TestCommand copies params into C memory: the native struct holds
// pointers, which cgo does not allow to point at Go memory.
func (c nativeClient) TestCommand(command int32, params *TestParams) int32 {
	if params == nil {
		return int32(C.gs_gattc_test_command(c.raw, C.int(command), nil))
	}
	p := (*C.gs_test_params_t)(C.calloc(1, C.size_t(unsafe.Sizeof(C.gs_test_params_t{}))))
	defer C.free(unsafe.Pointer(p))
	if params.BDA1 != nil {
		a := (*C.gs_raw_address_t)(C.malloc(C.size_t(unsafe.Sizeof(C.gs_raw_address_t{}))))
		defer C.free(unsafe.Pointer(a))
		*a = *cAddr(params.BDA1)
		p.bda1 = a
	}
	if params.UUID1 != nil {
		u := (*C.gs_uuid_t)(C.malloc(C.size_t(unsafe.Sizeof(C.gs_uuid_t{}))))
		defer C.free(unsafe.Pointer(u))
		*u = *cUUID(params.UUID1)
		p.uuid1 = u
	}
	p.u1, p.u2, p.u3 = C.uint16_t(params.U1), C.uint16_t(params.U2), C.uint16_t(params.U3)
	p.u4, p.u5 = C.uint16_t(params.U4), C.uint16_t(params.U5)
	return int32(C.gs_gattc_test_command(c.raw, C.int(command), p))
}

func (c nativeClient) GetGattDB(connID int32) int32 {
	return int32(C.gs_gattc_get_gatt_db(c.raw, C.int(connID)))
}

type nativeServer struct{ raw *C.gs_server_interface_t }

func (s nativeServer) RegisterServer(appUUID *RawUUID, eattSupport bool) int32 {
	return int32(C.gs_gatts_register_server(s.raw, cUUID(appUUID), C.bool(eattSupport)))
}

func (s nativeServer) UnregisterServer(serverIf int32) int32 {
	return int32(C.gs_gatts_unregister_server(s.raw, C.int(serverIf)))
}

func (s nativeServer) Connect(serverIf int32, bda *RawAddress, isDirect bool, transport int32) int32 {
	return int32(C.gs_gatts_connect(s.raw, C.int(serverIf), cAddr(bda), C.bool(isDirect), C.int(transport)))
}

func (s nativeServer) Disconnect(serverIf int32, bda *RawAddress, connID int32) int32 {
	return int32(C.gs_gatts_disconnect(s.raw, C.int(serverIf), cAddr(bda), C.int(connID)))
}

func (s nativeServer) AddService(serverIf int32, service *DbElement, count uintptr) int32 {
	var es []DbElement
	if service != nil && count > 0 {
		es = unsafe.Slice(service, count)
	}
	cs := cDbElements(es)
	if cs != nil {
		defer C.free(unsafe.Pointer(cs))
	}
	return int32(C.gs_gatts_add_service(s.raw, C.int(serverIf), cs, C.size_t(len(es))))
}

func (s nativeServer) StopService(serverIf, serviceHandle int32) int32 {
	return int32(C.gs_gatts_stop_service(s.raw, C.int(serverIf), C.int(serviceHandle)))
}

func (s nativeServer) DeleteService(serverIf, serviceHandle int32) int32 {
	return int32(C.gs_gatts_delete_service(s.raw, C.int(serverIf), C.int(serviceHandle)))
}

func (s nativeServer) SendIndication(serverIf, attributeHandle, connID, confirm int32, value *byte, length uintptr) int32 {
	return int32(C.gs_gatts_send_indication(s.raw, C.int(serverIf), C.int(attributeHandle), C.int(connID), C.int(confirm), cBytes(value), C.size_t(length)))
}

func (s nativeServer) SendResponse(connID, transID, status int32, response *Response) int32 {
	var r C.gs_response_t
	if response != nil {
		v := (*C.gs_value_t)(unsafe.Pointer(&r))
		C.memcpy(unsafe.Pointer(&v.value[0]), unsafe.Pointer(&response.AttrValue.Value[0]), C.size_t(GattMaxAttrLen))
		v.handle = C.uint16_t(response.AttrValue.Handle)
		v.offset = C.uint16_t(response.AttrValue.Offset)
		v.len = C.uint16_t(response.AttrValue.Len)
		v.auth_req = C.uint8_t(response.AttrValue.AuthReq)
	}
	return int32(C.gs_gatts_send_response(s.raw, C.int(connID), C.int(transID), C.int(status), &r))
}

func (s nativeServer) SetPreferredPhy(bda *RawAddress, txPhy, rxPhy uint8, phyOptions uint16) int32 {
	return int32(C.gs_gatts_set_preferred_phy(s.raw, cAddr(bda), C.uint8_t(txPhy), C.uint8_t(rxPhy), C.uint16_t(phyOptions)))
}

type nativeScanner struct{ raw *C.gs_scanner_interface_t }

func (s nativeScanner) RegisterCallbacks(cb *ScannerCallbacks) {
	if cb == nil || !installedScanCbs.CompareAndSwap(nil, cb) {
		return
	}
	C.gs_scan_register_callbacks(s.raw, C.gs_new_scanning_callbacks(C.uint64_t(scanningMask(cb))))
}

func (s nativeScanner) RegisterScanner(appUUID *RawUUID) {
	C.gs_scan_register_scanner(s.raw, cUUID(appUUID))
}

func (s nativeScanner) Unregister(scannerID uint8) { C.gs_scan_unregister(s.raw, C.uint8_t(scannerID)) }

func (s nativeScanner) Scan(start bool) { C.gs_scan_scan(s.raw, C.bool(start)) }

func (s nativeScanner) SetScanParameters(scannerID uint8, scanInterval, scanWindow int32) {
	C.gs_scan_set_scan_parameters(s.raw, C.uint8_t(scannerID), C.int(scanInterval), C.int(scanWindow))
}

func (s nativeScanner) BatchscanEnable(scanMode, scanInterval, scanWindow, addrType, discardRule int32) {
	C.gs_scan_batchscan_enable(s.raw, C.int(scanMode), C.int(scanInterval), C.int(scanWindow), C.int(addrType), C.int(discardRule))
}

func (s nativeScanner) BatchscanDisable() { C.gs_scan_batchscan_disable(s.raw) }

func (s nativeScanner) BatchscanReadReports(scannerID uint8, scanMode int32) {
	C.gs_scan_batchscan_read_reports(s.raw, C.uint8_t(scannerID), C.int(scanMode))
}

type nativeAdvertiser struct{ raw *C.gs_advertiser_interface_t }

func (a nativeAdvertiser) RegisterAdvertiser() int32 {
	return int32(C.gs_adv_register_advertiser(a.raw))
}

func (a nativeAdvertiser) Unregister(advertiserID uint8) {
	C.gs_adv_unregister(a.raw, C.uint8_t(advertiserID))
}

func (a nativeAdvertiser) SetData(advertiserID uint8, scanResponse bool, data *byte, length uintptr) int32 {
	return int32(C.gs_adv_set_data(a.raw, C.uint8_t(advertiserID), C.bool(scanResponse), cBytes(data), C.size_t(length)))
}

func (a nativeAdvertiser) Enable(advertiserID uint8, enable bool, duration uint16, maxExtAdvEvents uint8) int32 {
	return int32(C.gs_adv_enable(a.raw, C.uint8_t(advertiserID), C.bool(enable), C.uint16_t(duration), C.uint8_t(maxExtAdvEvents)))
}
