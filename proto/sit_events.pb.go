// Realtime update frames. All fields are sparse deltas: presence means
// "changed to this value", absence means "unchanged". Wrapper messages with
// an unset inner field encode "changed to null".

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: sit_events.proto

package sitv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UpdateType int32

const (
	UpdateType_UPDATE_TYPE_UNSPECIFIED UpdateType = 0
	UpdateType_UPDATE_TYPE_ADD         UpdateType = 1
	UpdateType_UPDATE_TYPE_REMOVE      UpdateType = 2
	UpdateType_UPDATE_TYPE_UPDATE      UpdateType = 3
)

// Enum value maps for UpdateType.
var (
	UpdateType_name = map[int32]string{
		0: "UPDATE_TYPE_UNSPECIFIED",
		1: "UPDATE_TYPE_ADD",
		2: "UPDATE_TYPE_REMOVE",
		3: "UPDATE_TYPE_UPDATE",
	}
	UpdateType_value = map[string]int32{
		"UPDATE_TYPE_UNSPECIFIED": 0,
		"UPDATE_TYPE_ADD":         1,
		"UPDATE_TYPE_REMOVE":      2,
		"UPDATE_TYPE_UPDATE":      3,
	}
)

func (x UpdateType) Enum() *UpdateType {
	p := new(UpdateType)
	*p = x
	return p
}

func (x UpdateType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (UpdateType) Descriptor() protoreflect.EnumDescriptor {
	return file_sit_events_proto_enumTypes[0].Descriptor()
}

func (UpdateType) Type() protoreflect.EnumType {
	return &file_sit_events_proto_enumTypes[0]
}

func (x UpdateType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use UpdateType.Descriptor instead.
func (UpdateType) EnumDescriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{0}
}

// NextSignal describes the signal ahead of a running train.
type NextSignal struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DistanceM     uint32                 `protobuf:"varint,2,opt,name=distance_m,json=distanceM,proto3" json:"distance_m,omitempty"`
	SpeedLimitKmh *uint32                `protobuf:"varint,3,opt,name=speed_limit_kmh,json=speedLimitKmh,proto3,oneof" json:"speed_limit_kmh,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NextSignal) Reset() {
	*x = NextSignal{}
	mi := &file_sit_events_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NextSignal) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextSignal) ProtoMessage() {}

func (x *NextSignal) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextSignal.ProtoReflect.Descriptor instead.
func (*NextSignal) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{0}
}

func (x *NextSignal) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *NextSignal) GetDistanceM() uint32 {
	if x != nil {
		return x.DistanceM
	}
	return 0
}

func (x *NextSignal) GetSpeedLimitKmh() uint32 {
	if x != nil && x.SpeedLimitKmh != nil {
		return *x.SpeedLimitKmh
	}
	return 0
}

// NextSignalChange present with an unset signal means the next signal moved
// out of range (more than 5 km ahead).
type NextSignalChange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Signal        *NextSignal            `protobuf:"bytes,1,opt,name=signal,proto3" json:"signal,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NextSignalChange) Reset() {
	*x = NextSignalChange{}
	mi := &file_sit_events_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NextSignalChange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextSignalChange) ProtoMessage() {}

func (x *NextSignalChange) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextSignalChange.ProtoReflect.Descriptor instead.
func (*NextSignalChange) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{1}
}

func (x *NextSignalChange) GetSignal() *NextSignal {
	if x != nil {
		return x.Signal
	}
	return nil
}

// DriverChange present with an unset driver_id means the train lost its
// human driver (bot takeover).
type DriverChange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      *string                `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3,oneof" json:"driver_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DriverChange) Reset() {
	*x = DriverChange{}
	mi := &file_sit_events_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DriverChange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DriverChange) ProtoMessage() {}

func (x *DriverChange) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DriverChange.ProtoReflect.Descriptor instead.
func (*DriverChange) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{2}
}

func (x *DriverChange) GetDriverId() string {
	if x != nil && x.DriverId != nil {
		return *x.DriverId
	}
	return ""
}

type Position struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Latitude      float64                `protobuf:"fixed64,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude     float64                `protobuf:"fixed64,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Position) Reset() {
	*x = Position{}
	mi := &file_sit_events_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Position) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Position) ProtoMessage() {}

func (x *Position) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Position.ProtoReflect.Descriptor instead.
func (*Position) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{3}
}

func (x *Position) GetLatitude() float64 {
	if x != nil {
		return x.Latitude
	}
	return 0
}

func (x *Position) GetLongitude() float64 {
	if x != nil {
		return x.Longitude
	}
	return 0
}

type JourneyUpdateFrame struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JourneyId     string                 `protobuf:"bytes,1,opt,name=journey_id,json=journeyId,proto3" json:"journey_id,omitempty"`
	ServerId      string                 `protobuf:"bytes,2,opt,name=server_id,json=serverId,proto3" json:"server_id,omitempty"`
	UpdateType    UpdateType             `protobuf:"varint,3,opt,name=update_type,json=updateType,proto3,enum=sit.v1.UpdateType" json:"update_type,omitempty"`
	Driver        *DriverChange          `protobuf:"bytes,4,opt,name=driver,proto3" json:"driver,omitempty"`
	NextSignal    *NextSignalChange      `protobuf:"bytes,5,opt,name=next_signal,json=nextSignal,proto3" json:"next_signal,omitempty"`
	SpeedKmh      *uint32                `protobuf:"varint,6,opt,name=speed_kmh,json=speedKmh,proto3,oneof" json:"speed_kmh,omitempty"`
	Position      *Position              `protobuf:"bytes,7,opt,name=position,proto3" json:"position,omitempty"`
	EventUpdated  bool                   `protobuf:"varint,8,opt,name=event_updated,json=eventUpdated,proto3" json:"event_updated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JourneyUpdateFrame) Reset() {
	*x = JourneyUpdateFrame{}
	mi := &file_sit_events_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JourneyUpdateFrame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JourneyUpdateFrame) ProtoMessage() {}

func (x *JourneyUpdateFrame) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JourneyUpdateFrame.ProtoReflect.Descriptor instead.
func (*JourneyUpdateFrame) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{4}
}

func (x *JourneyUpdateFrame) GetJourneyId() string {
	if x != nil {
		return x.JourneyId
	}
	return ""
}

func (x *JourneyUpdateFrame) GetServerId() string {
	if x != nil {
		return x.ServerId
	}
	return ""
}

func (x *JourneyUpdateFrame) GetUpdateType() UpdateType {
	if x != nil {
		return x.UpdateType
	}
	return UpdateType_UPDATE_TYPE_UNSPECIFIED
}

func (x *JourneyUpdateFrame) GetDriver() *DriverChange {
	if x != nil {
		return x.Driver
	}
	return nil
}

func (x *JourneyUpdateFrame) GetNextSignal() *NextSignalChange {
	if x != nil {
		return x.NextSignal
	}
	return nil
}

func (x *JourneyUpdateFrame) GetSpeedKmh() uint32 {
	if x != nil && x.SpeedKmh != nil {
		return *x.SpeedKmh
	}
	return 0
}

func (x *JourneyUpdateFrame) GetPosition() *Position {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *JourneyUpdateFrame) GetEventUpdated() bool {
	if x != nil {
		return x.EventUpdated
	}
	return false
}

type ServerUpdateFrame struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ServerId       string                 `protobuf:"bytes,1,opt,name=server_id,json=serverId,proto3" json:"server_id,omitempty"`
	UpdateType     UpdateType             `protobuf:"varint,2,opt,name=update_type,json=updateType,proto3,enum=sit.v1.UpdateType" json:"update_type,omitempty"`
	Online         *bool                  `protobuf:"varint,3,opt,name=online,proto3,oneof" json:"online,omitempty"`
	ZoneOffset     *string                `protobuf:"bytes,4,opt,name=zone_offset,json=zoneOffset,proto3,oneof" json:"zone_offset,omitempty"`
	UtcOffsetHours *int32                 `protobuf:"zigzag32,5,opt,name=utc_offset_hours,json=utcOffsetHours,proto3,oneof" json:"utc_offset_hours,omitempty"`
	ServerScenery  *string                `protobuf:"bytes,6,opt,name=server_scenery,json=serverScenery,proto3,oneof" json:"server_scenery,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ServerUpdateFrame) Reset() {
	*x = ServerUpdateFrame{}
	mi := &file_sit_events_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerUpdateFrame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerUpdateFrame) ProtoMessage() {}

func (x *ServerUpdateFrame) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerUpdateFrame.ProtoReflect.Descriptor instead.
func (*ServerUpdateFrame) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{5}
}

func (x *ServerUpdateFrame) GetServerId() string {
	if x != nil {
		return x.ServerId
	}
	return ""
}

func (x *ServerUpdateFrame) GetUpdateType() UpdateType {
	if x != nil {
		return x.UpdateType
	}
	return UpdateType_UPDATE_TYPE_UNSPECIFIED
}

func (x *ServerUpdateFrame) GetOnline() bool {
	if x != nil && x.Online != nil {
		return *x.Online
	}
	return false
}

func (x *ServerUpdateFrame) GetZoneOffset() string {
	if x != nil && x.ZoneOffset != nil {
		return *x.ZoneOffset
	}
	return ""
}

func (x *ServerUpdateFrame) GetUtcOffsetHours() int32 {
	if x != nil && x.UtcOffsetHours != nil {
		return *x.UtcOffsetHours
	}
	return 0
}

func (x *ServerUpdateFrame) GetServerScenery() string {
	if x != nil && x.ServerScenery != nil {
		return *x.ServerScenery
	}
	return ""
}

type DispatchPostUpdateFrame struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	PostId     string                 `protobuf:"bytes,1,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	ServerId   string                 `protobuf:"bytes,2,opt,name=server_id,json=serverId,proto3" json:"server_id,omitempty"`
	UpdateType UpdateType             `protobuf:"varint,3,opt,name=update_type,json=updateType,proto3,enum=sit.v1.UpdateType" json:"update_type,omitempty"`
	// Always the complete dispatcher set when dispatchers_changed is true.
	DispatcherIds      []string `protobuf:"bytes,4,rep,name=dispatcher_ids,json=dispatcherIds,proto3" json:"dispatcher_ids,omitempty"`
	DispatchersChanged bool     `protobuf:"varint,5,opt,name=dispatchers_changed,json=dispatchersChanged,proto3" json:"dispatchers_changed,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *DispatchPostUpdateFrame) Reset() {
	*x = DispatchPostUpdateFrame{}
	mi := &file_sit_events_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchPostUpdateFrame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchPostUpdateFrame) ProtoMessage() {}

func (x *DispatchPostUpdateFrame) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispatchPostUpdateFrame.ProtoReflect.Descriptor instead.
func (*DispatchPostUpdateFrame) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{6}
}

func (x *DispatchPostUpdateFrame) GetPostId() string {
	if x != nil {
		return x.PostId
	}
	return ""
}

func (x *DispatchPostUpdateFrame) GetServerId() string {
	if x != nil {
		return x.ServerId
	}
	return ""
}

func (x *DispatchPostUpdateFrame) GetUpdateType() UpdateType {
	if x != nil {
		return x.UpdateType
	}
	return UpdateType_UPDATE_TYPE_UNSPECIFIED
}

func (x *DispatchPostUpdateFrame) GetDispatcherIds() []string {
	if x != nil {
		return x.DispatcherIds
	}
	return nil
}

func (x *DispatchPostUpdateFrame) GetDispatchersChanged() bool {
	if x != nil {
		return x.DispatchersChanged
	}
	return false
}

type SubscribeRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional server filter; empty subscribes to all servers.
	ServerId      string `protobuf:"bytes,1,opt,name=server_id,json=serverId,proto3" json:"server_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	mi := &file_sit_events_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sit_events_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeRequest.ProtoReflect.Descriptor instead.
func (*SubscribeRequest) Descriptor() ([]byte, []int) {
	return file_sit_events_proto_rawDescGZIP(), []int{7}
}

func (x *SubscribeRequest) GetServerId() string {
	if x != nil {
		return x.ServerId
	}
	return ""
}

var File_sit_events_proto protoreflect.FileDescriptor

const file_sit_events_proto_rawDesc = "" +
	"\n" +
	"\x10sit_events.proto\x12\x06sit.v1\"\x80\x01\n" +
	"\n" +
	"NextSignal\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"distance_m\x18\x02 \x01(\rR\tdistanceM\x12+\n" +
	"\x0fspeed_limit_kmh\x18\x03 \x01(\rH\x00R\rspeedLimitKmh\x88\x01\x01B\x12\n" +
	"\x10_speed_limit_kmh\">\n" +
	"\x10NextSignalChange\x12*\n" +
	"\x06signal\x18\x01 \x01(\v2\x12.sit.v1.NextSignalR\x06signal\">\n" +
	"\fDriverChange\x12 \n" +
	"\tdriver_id\x18\x01 \x01(\tH\x00R\bdriverId\x88\x01\x01B\f\n" +
	"\n" +
	"_driver_id\"D\n" +
	"\bPosition\x12\x1a\n" +
	"\blatitude\x18\x01 \x01(\x01R\blatitude\x12\x1c\n" +
	"\tlongitude\x18\x02 \x01(\x01R\tlongitude\"\xf1\x02\n" +
	"\x12JourneyUpdateFrame\x12\x1d\n" +
	"\n" +
	"journey_id\x18\x01 \x01(\tR\tjourneyId\x12\x1b\n" +
	"\tserver_id\x18\x02 \x01(\tR\bserverId\x123\n" +
	"\vupdate_type\x18\x03 \x01(\x0e2\x12.sit.v1.UpdateTypeR\n" +
	"updateType\x12,\n" +
	"\x06driver\x18\x04 \x01(\v2\x14.sit.v1.DriverChangeR\x06driver\x129\n" +
	"\vnext_signal\x18\x05 \x01(\v2\x18.sit.v1.NextSignalChangeR\n" +
	"nextSignal\x12 \n" +
	"\tspeed_kmh\x18\x06 \x01(\rH\x00R\bspeedKmh\x88\x01\x01\x12,\n" +
	"\bposition\x18\a \x01(\v2\x10.sit.v1.PositionR\bposition\x12#\n" +
	"\revent_updated\x18\b \x01(\bR\feventUpdatedB\f\n" +
	"\n" +
	"_speed_kmh\"\xc6\x02\n" +
	"\x11ServerUpdateFrame\x12\x1b\n" +
	"\tserver_id\x18\x01 \x01(\tR\bserverId\x123\n" +
	"\vupdate_type\x18\x02 \x01(\x0e2\x12.sit.v1.UpdateTypeR\n" +
	"updateType\x12\x1b\n" +
	"\x06online\x18\x03 \x01(\bH\x00R\x06online\x88\x01\x01\x12$\n" +
	"\vzone_offset\x18\x04 \x01(\tH\x01R\n" +
	"zoneOffset\x88\x01\x01\x12-\n" +
	"\x10utc_offset_hours\x18\x05 \x01(\x11H\x02R\x0eutcOffsetHours\x88\x01\x01\x12*\n" +
	"\x0eserver_scenery\x18\x06 \x01(\tH\x03R\rserverScenery\x88\x01\x01B\t\n" +
	"\a_onlineB\x0e\n" +
	"\f_zone_offsetB\x13\n" +
	"\x11_utc_offset_hoursB\x11\n" +
	"\x0f_server_scenery\"\xdc\x01\n" +
	"\x17DispatchPostUpdateFrame\x12\x17\n" +
	"\apost_id\x18\x01 \x01(\tR\x06postId\x12\x1b\n" +
	"\tserver_id\x18\x02 \x01(\tR\bserverId\x123\n" +
	"\vupdate_type\x18\x03 \x01(\x0e2\x12.sit.v1.UpdateTypeR\n" +
	"updateType\x12%\n" +
	"\x0edispatcher_ids\x18\x04 \x03(\tR\rdispatcherIds\x12/\n" +
	"\x13dispatchers_changed\x18\x05 \x01(\bR\x12dispatchersChanged\"/\n" +
	"\x10SubscribeRequest\x12\x1b\n" +
	"\tserver_id\x18\x01 \x01(\tR\bserverId*n\n" +
	"\n" +
	"UpdateType\x12\x1b\n" +
	"\x17UPDATE_TYPE_UNSPECIFIED\x10\x00\x12\x13\n" +
	"\x0fUPDATE_TYPE_ADD\x10\x01\x12\x16\n" +
	"\x12UPDATE_TYPE_REMOVE\x10\x02\x12\x16\n" +
	"\x12UPDATE_TYPE_UPDATE\x10\x032\x8f\x02\n" +
	"\fUpdateStream\x12Q\n" +
	"\x17SubscribeJourneyUpdates\x12\x18.sit.v1.SubscribeRequest\x1a\x1a.sit.v1.JourneyUpdateFrame0\x01\x12O\n" +
	"\x16SubscribeServerUpdates\x12\x18.sit.v1.SubscribeRequest\x1a\x19.sit.v1.ServerUpdateFrame0\x01\x12[\n" +
	"\x1cSubscribeDispatchPostUpdates\x12\x18.sit.v1.SubscribeRequest\x1a\x1f.sit.v1.DispatchPostUpdateFrame0\x01B/Z-github.com/simtrack/sit-collector/proto;sitv1b\x06proto3"

var (
	file_sit_events_proto_rawDescOnce sync.Once
	file_sit_events_proto_rawDescData []byte
)

func file_sit_events_proto_rawDescGZIP() []byte {
	file_sit_events_proto_rawDescOnce.Do(func() {
		file_sit_events_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_sit_events_proto_rawDesc), len(file_sit_events_proto_rawDesc)))
	})
	return file_sit_events_proto_rawDescData
}

var file_sit_events_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_sit_events_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_sit_events_proto_goTypes = []any{
	(UpdateType)(0),                 // 0: sit.v1.UpdateType
	(*NextSignal)(nil),              // 1: sit.v1.NextSignal
	(*NextSignalChange)(nil),        // 2: sit.v1.NextSignalChange
	(*DriverChange)(nil),            // 3: sit.v1.DriverChange
	(*Position)(nil),                // 4: sit.v1.Position
	(*JourneyUpdateFrame)(nil),      // 5: sit.v1.JourneyUpdateFrame
	(*ServerUpdateFrame)(nil),       // 6: sit.v1.ServerUpdateFrame
	(*DispatchPostUpdateFrame)(nil), // 7: sit.v1.DispatchPostUpdateFrame
	(*SubscribeRequest)(nil),        // 8: sit.v1.SubscribeRequest
}
var file_sit_events_proto_depIdxs = []int32{
	1,  // 0: sit.v1.NextSignalChange.signal:type_name -> sit.v1.NextSignal
	0,  // 1: sit.v1.JourneyUpdateFrame.update_type:type_name -> sit.v1.UpdateType
	3,  // 2: sit.v1.JourneyUpdateFrame.driver:type_name -> sit.v1.DriverChange
	2,  // 3: sit.v1.JourneyUpdateFrame.next_signal:type_name -> sit.v1.NextSignalChange
	4,  // 4: sit.v1.JourneyUpdateFrame.position:type_name -> sit.v1.Position
	0,  // 5: sit.v1.ServerUpdateFrame.update_type:type_name -> sit.v1.UpdateType
	0,  // 6: sit.v1.DispatchPostUpdateFrame.update_type:type_name -> sit.v1.UpdateType
	8,  // 7: sit.v1.UpdateStream.SubscribeJourneyUpdates:input_type -> sit.v1.SubscribeRequest
	8,  // 8: sit.v1.UpdateStream.SubscribeServerUpdates:input_type -> sit.v1.SubscribeRequest
	8,  // 9: sit.v1.UpdateStream.SubscribeDispatchPostUpdates:input_type -> sit.v1.SubscribeRequest
	5,  // 10: sit.v1.UpdateStream.SubscribeJourneyUpdates:output_type -> sit.v1.JourneyUpdateFrame
	6,  // 11: sit.v1.UpdateStream.SubscribeServerUpdates:output_type -> sit.v1.ServerUpdateFrame
	7,  // 12: sit.v1.UpdateStream.SubscribeDispatchPostUpdates:output_type -> sit.v1.DispatchPostUpdateFrame
	10, // [10:13] is the sub-list for method output_type
	7,  // [7:10] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_sit_events_proto_init() }
func file_sit_events_proto_init() {
	if File_sit_events_proto != nil {
		return
	}
	file_sit_events_proto_msgTypes[0].OneofWrappers = []any{}
	file_sit_events_proto_msgTypes[2].OneofWrappers = []any{}
	file_sit_events_proto_msgTypes[4].OneofWrappers = []any{}
	file_sit_events_proto_msgTypes[5].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sit_events_proto_rawDesc), len(file_sit_events_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sit_events_proto_goTypes,
		DependencyIndexes: file_sit_events_proto_depIdxs,
		EnumInfos:         file_sit_events_proto_enumTypes,
		MessageInfos:      file_sit_events_proto_msgTypes,
	}.Build()
	File_sit_events_proto = out.File
	file_sit_events_proto_goTypes = nil
	file_sit_events_proto_depIdxs = nil
}
