package pdu

import "fmt"

// MaxPDUSize is the default maximum command_length a frame decoder accepts
// unless overridden (see the maxLength argument of frame.NewReader).
const MaxPDUSize = 8192

// CommandStatus represents the four-byte command_status header field.
// Unrecognized values are preserved verbatim: String formats them as
// Other(0x...) and the bit pattern round-trips through encode/decode
// unchanged, which is the Go equivalent of a Rust Other(u32) variant.
type CommandStatus uint32

// SMPP 5.0 command status set (ESME_* in the specification, renamed
// without the prefix since the Go type already scopes them).
const (
	StatusOK              CommandStatus = 0x00000000
	StatusInvMsgLen       CommandStatus = 0x00000001
	StatusInvCmdLen       CommandStatus = 0x00000002
	StatusInvCmdID        CommandStatus = 0x00000003
	StatusInvBnd          CommandStatus = 0x00000004
	StatusAlyBnd          CommandStatus = 0x00000005
	StatusInvPrtFlg       CommandStatus = 0x00000006
	StatusInvRegDlvFlg    CommandStatus = 0x00000007
	StatusSysErr          CommandStatus = 0x00000008
	StatusInvSrcAdr       CommandStatus = 0x0000000A
	StatusInvDstAdr       CommandStatus = 0x0000000B
	StatusInvMsgID        CommandStatus = 0x0000000C
	StatusBindFail        CommandStatus = 0x0000000D
	StatusInvPaswd        CommandStatus = 0x0000000E
	StatusInvSysID        CommandStatus = 0x0000000F
	StatusCancelFail      CommandStatus = 0x00000011
	StatusReplaceFail     CommandStatus = 0x00000013
	StatusMsgQFul         CommandStatus = 0x00000014
	StatusInvSerTyp       CommandStatus = 0x00000015
	StatusInvNumDe        CommandStatus = 0x00000033
	StatusInvDLName       CommandStatus = 0x00000034
	StatusInvDestFlag     CommandStatus = 0x00000040
	StatusInvSubRep       CommandStatus = 0x00000042
	StatusInvEsmClass     CommandStatus = 0x00000043
	StatusCntSubDL        CommandStatus = 0x00000044
	StatusSubmitFail      CommandStatus = 0x00000045
	StatusInvSrcTON       CommandStatus = 0x00000048
	StatusInvSrcNPI       CommandStatus = 0x00000049
	StatusInvDstTON       CommandStatus = 0x00000050
	StatusInvDstNPI       CommandStatus = 0x00000051
	StatusInvSysTyp       CommandStatus = 0x00000053
	StatusInvRepFlag      CommandStatus = 0x00000054
	StatusInvNumMsgs      CommandStatus = 0x00000055
	StatusThrottled       CommandStatus = 0x00000058
	StatusInvSched        CommandStatus = 0x00000061
	StatusInvExpiry       CommandStatus = 0x00000062
	StatusInvDftMsgID     CommandStatus = 0x00000063
	StatusTempAppErr      CommandStatus = 0x00000064
	StatusPermAppErr      CommandStatus = 0x00000065
	StatusRejeAppErr      CommandStatus = 0x00000066
	StatusQueryFail       CommandStatus = 0x00000067
	StatusInvOptParStream CommandStatus = 0x000000C0
	StatusOptParNotAllwd  CommandStatus = 0x000000C1
	StatusInvParLen       CommandStatus = 0x000000C2
	StatusMissingOptParam CommandStatus = 0x000000C3
	StatusInvOptParamVal  CommandStatus = 0x000000C4
	StatusDeliveryFailure CommandStatus = 0x000000FE
	StatusUnknownErr      CommandStatus = 0x000000FF
	// Added in SMPP 5.0 for the broadcast operations.
	StatusInvBcastAreaFormat     CommandStatus = 0x00000070
	StatusInvNumBcastAreas       CommandStatus = 0x00000071
	StatusInvBcastContentType    CommandStatus = 0x00000072
	StatusInvBcastFreqInt        CommandStatus = 0x00000073
	StatusInvBcastAliasName      CommandStatus = 0x00000074
	StatusInvBcastAreaIDentifier CommandStatus = 0x00000075
	StatusInvBcastMaxRepeat      CommandStatus = 0x00000076
	StatusQueryBcastSmFail       CommandStatus = 0x00000077
	StatusBcastCancelFail        CommandStatus = 0x00000078
	StatusBcastReplaceFail       CommandStatus = 0x00000079
)

var statusNames = map[CommandStatus]string{
	StatusOK: "OK", StatusInvMsgLen: "InvMsgLen", StatusInvCmdLen: "InvCmdLen",
	StatusInvCmdID: "InvCmdID", StatusInvBnd: "InvBnd", StatusAlyBnd: "AlyBnd",
	StatusInvPrtFlg: "InvPrtFlg", StatusInvRegDlvFlg: "InvRegDlvFlg",
	StatusSysErr: "SysErr", StatusInvSrcAdr: "InvSrcAdr", StatusInvDstAdr: "InvDstAdr",
	StatusInvMsgID: "InvMsgID", StatusBindFail: "BindFail", StatusInvPaswd: "InvPaswd",
	StatusInvSysID: "InvSysID", StatusCancelFail: "CancelFail", StatusReplaceFail: "ReplaceFail",
	StatusMsgQFul: "MsgQFul", StatusInvSerTyp: "InvSerTyp", StatusInvNumDe: "InvNumDe",
	StatusInvDLName: "InvDLName", StatusInvDestFlag: "InvDestFlag", StatusInvSubRep: "InvSubRep",
	StatusInvEsmClass: "InvEsmClass", StatusCntSubDL: "CntSubDL", StatusSubmitFail: "SubmitFail",
	StatusInvSrcTON: "InvSrcTON", StatusInvSrcNPI: "InvSrcNPI", StatusInvDstTON: "InvDstTON",
	StatusInvDstNPI: "InvDstNPI", StatusInvSysTyp: "InvSysTyp", StatusInvRepFlag: "InvRepFlag",
	StatusInvNumMsgs: "InvNumMsgs", StatusThrottled: "Throttled", StatusInvSched: "InvSched",
	StatusInvExpiry: "InvExpiry", StatusInvDftMsgID: "InvDftMsgID", StatusTempAppErr: "TempAppErr",
	StatusPermAppErr: "PermAppErr", StatusRejeAppErr: "RejeAppErr", StatusQueryFail: "QueryFail",
	StatusInvOptParStream: "InvOptParStream", StatusOptParNotAllwd: "OptParNotAllwd",
	StatusInvParLen: "InvParLen", StatusMissingOptParam: "MissingOptParam",
	StatusInvOptParamVal: "InvOptParamVal", StatusDeliveryFailure: "DeliveryFailure",
	StatusUnknownErr: "UnknownErr",
	StatusInvBcastAreaFormat: "InvBcastAreaFormat", StatusInvNumBcastAreas: "InvNumBcastAreas",
	StatusInvBcastContentType: "InvBcastContentType", StatusInvBcastFreqInt: "InvBcastFreqInt",
	StatusInvBcastAliasName: "InvBcastAliasName", StatusInvBcastAreaIDentifier: "InvBcastAreaIDentifier",
	StatusInvBcastMaxRepeat: "InvBcastMaxRepeat", StatusQueryBcastSmFail: "QueryBcastSmFail",
	StatusBcastCancelFail: "BcastCancelFail", StatusBcastReplaceFail: "BcastReplaceFail",
}

// String implements fmt.Stringer, printing the recognized name or
// Other(0x...) for an unrecognized value — the round-trippable Go
// equivalent of an Other(n) enum variant.
func (s CommandStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Other(0x%08X)", uint32(s))
}

// CommandID is the four-byte command_id header field.
type CommandID uint32

// SMPP 5.0 command set.
const (
	GenericNackID          CommandID = 0x80000000
	BindReceiverID         CommandID = 0x00000001
	BindReceiverRespID     CommandID = 0x80000001
	BindTransmitterID      CommandID = 0x00000002
	BindTransmitterRespID  CommandID = 0x80000002
	QuerySmID              CommandID = 0x00000003
	QuerySmRespID          CommandID = 0x80000003
	SubmitSmID             CommandID = 0x00000004
	SubmitSmRespID         CommandID = 0x80000004
	DeliverSmID            CommandID = 0x00000005
	DeliverSmRespID        CommandID = 0x80000005
	UnbindID               CommandID = 0x00000006
	UnbindRespID           CommandID = 0x80000006
	ReplaceSmID            CommandID = 0x00000007
	ReplaceSmRespID        CommandID = 0x80000007
	CancelSmID             CommandID = 0x00000008
	CancelSmRespID         CommandID = 0x80000008
	BindTransceiverID      CommandID = 0x00000009
	BindTransceiverRespID  CommandID = 0x80000009
	OutbindID              CommandID = 0x0000000B
	EnquireLinkID          CommandID = 0x00000015
	EnquireLinkRespID      CommandID = 0x80000015
	SubmitMultiID          CommandID = 0x00000021
	SubmitMultiRespID      CommandID = 0x80000021
	AlertNotificationID    CommandID = 0x00000102
	DataSmID               CommandID = 0x00000103
	DataSmRespID           CommandID = 0x80000103
	// SMPP 5.0 broadcast operations, absent from the 3.4 command set.
	BroadcastSmID          CommandID = 0x00000111
	BroadcastSmRespID      CommandID = 0x80000111
	QueryBroadcastSmID     CommandID = 0x00000112
	QueryBroadcastSmRespID CommandID = 0x80000112
	CancelBroadcastSmID    CommandID = 0x00000113
	CancelBroadcastSmRespID CommandID = 0x80000113
)

// IsRequest reports whether id belongs to a request PDU (high bit clear),
// as opposed to a response (high bit set).
func IsRequest(id CommandID) bool {
	return id&0x80000000 == 0
}

// SMPP mandatory field names, used in decode error messages.
const (
	SystemIDFld             = "system_id"
	PasswordFld             = "password"
	SystemTypeFld           = "system_type"
	InterfaceVersionFld     = "interface_version"
	AddrTonFld              = "addr_ton"
	AddrNpiFld              = "addr_npi"
	AddressRangeFld         = "address_range"
	ServiceTypeFld          = "service_type"
	SourceAddrTonFld        = "source_addr_ton"
	SourceAddrNpiFld        = "source_addr_npi"
	SourceAddrFld           = "source_addr"
	DestAddrTonFld          = "dest_addr_ton"
	DestAddrNpiFld          = "dest_addr_npi"
	NumberOfDestsFld        = "number_of_dests"
	DestFlagFld             = "dest_flag"
	DlNameFld               = "dl_name"
	DestinationAddrFld      = "destination_addr"
	NoUnsuccessFld          = "no_unsuccess"
	EsmClassFld             = "esm_class"
	ProtocolIDFld           = "protocol_id"
	PriorityFlagFld         = "priority_flag"
	ScheduleDeliveryTimeFld = "schedule_delivery_time"
	ValidityPeriodFld       = "validity_period"
	RegisteredDeliveryFld   = "registered_delivery"
	ReplaceIfPresentFlagFld = "replace_if_present_flag"
	DataCodingFld           = "data_coding"
	SmDefaultMsgIDFld       = "sm_default_msg_id"
	SmLengthFld             = "sm_length"
	ShortMessageFld         = "short_message"
	MessageIDFld            = "message_id"
	FinalDateFld            = "final_date"
	MessageStateFld         = "message_state"
	ErrorCodeFld            = "error_code"
	EsmeAddrTonFld          = "esme_addr_ton"
	EsmeAddrNpiFld          = "esme_addr_npi"
	EsmeAddrFld             = "esme_addr"
	MessagePayloadFld       = "message_payload"
)

// TagID is the two-byte TLV tag identifier.
type TagID uint16

// PDU tags for optional (TLV) parameters.
const (
	TagDestAddrSubUnit        TagID = 0x0005
	TagDestNetworkType        TagID = 0x0006
	TagDestBearerType         TagID = 0x0007
	TagDestTelematicsID       TagID = 0x0008
	TagSourceAddrSubunit      TagID = 0x000D
	TagSourceNetworkType      TagID = 0x000E
	TagSourceBearerType       TagID = 0x000F
	TagSourceTelematicsID     TagID = 0x0010
	TagQosTimeToLive          TagID = 0x0017
	TagPayloadType            TagID = 0x0019
	TagAdditionalStatusInfoTe TagID = 0x001D
	TagReceiptedMessageID     TagID = 0x001E
	TagMsMsgWaitFacilities    TagID = 0x0030
	TagPrivacyIndicator       TagID = 0x0201
	TagSourceSubaddress       TagID = 0x0202
	TagDestSubaddress         TagID = 0x0203
	TagUserMessageReference   TagID = 0x0204
	TagUserResponseCode       TagID = 0x0205
	TagSourcePort             TagID = 0x020A
	TagDestinationPort        TagID = 0x020B
	TagSarMsgRefNum           TagID = 0x020C
	TagLanguageIndicator      TagID = 0x020D
	TagSarTotalSegments       TagID = 0x020E
	TagSarSegmentSeqnum       TagID = 0x020F
	TagScInterfaceVersion     TagID = 0x0210
	TagCallbackNumPresInd     TagID = 0x0302
	TagCallbackNumA           TagID = 0x0303
	TagNumberOfMessages       TagID = 0x0304
	TagCallbackNum            TagID = 0x0381
	TagDpfResult              TagID = 0x0420
	TagSetDPF                 TagID = 0x0421
	TagMsAvailabilityStatus   TagID = 0x0422
	TagNetworkErrorCode       TagID = 0x0423
	TagMessagePayload         TagID = 0x0424
	TagDeliveryFailureReason  TagID = 0x0425
	TagMoreMessagesToSend     TagID = 0x0426
	TagMessageState           TagID = 0x0427
	TagUssdServiceOp          TagID = 0x0501
	TagDisplayTime            TagID = 0x1201
	TagSmsSignal              TagID = 0x1203
	TagMsValidity             TagID = 0x1204
	TagAlertOnMessageDeliv    TagID = 0x130C
	TagItsReplyType           TagID = 0x1380
	TagItsSessionInfo         TagID = 0x1383
	// SMPP 5.0 broadcast TLVs.
	TagBroadcastChannelIndicator TagID = 0x0600
	TagBroadcastContentType      TagID = 0x0601
	TagBroadcastRepNum           TagID = 0x0602
	TagBroadcastFrequencyInterval TagID = 0x0603
	TagBroadcastAreaIdentifier   TagID = 0x0604
	TagBroadcastErrorStatus      TagID = 0x0605
	TagBroadcastAreaSuccess      TagID = 0x0606
	TagBroadcastEndTime          TagID = 0x0607
	TagBroadcastServiceGroup     TagID = 0x0608
	TagBillingIdentification     TagID = 0x060B
	TagSourceNetworkID           TagID = 0x060D
	TagDestNetworkID             TagID = 0x060E
	TagSourceNodeID              TagID = 0x060F
	TagDestNodeID                TagID = 0x0610
	TagDestAddrNpResolution      TagID = 0x0611
	TagDestAddrNpInformation     TagID = 0x0612
	TagDestAddrNpCountry         TagID = 0x0613
	TagCongestionState           TagID = 0x0616
)

// InterfaceVersion is the one-byte interface_version field of bind PDUs.
type InterfaceVersion uint8

// Recognized interface_version values.
const (
	InterfaceVersion33  InterfaceVersion = 0x33
	InterfaceVersion34  InterfaceVersion = 0x34
	InterfaceVersion50  InterfaceVersion = 0x50
)

func (v InterfaceVersion) String() string {
	switch v {
	case InterfaceVersion33:
		return "3.3"
	case InterfaceVersion34:
		return "3.4"
	case InterfaceVersion50:
		return "5.0"
	default:
		return fmt.Sprintf("Other(0x%02X)", uint8(v))
	}
}
