package wire

import (
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeRData decodes a record data payload of the given type occupying
// msg[off:end]. The payload must consume exactly the declared length;
// shortfall and excess are both errors. Embedded domain names resolve
// compression pointers against the full message buffer, not the data slice.
func decodeRData(msg []byte, off, end int, t domain.RRType) (domain.RData, error) {
	var (
		data domain.RData
		next int
		err  error
	)
	switch t {
	case domain.RRTypeA: // 1
		data, next, err = decodeAData(msg, off, end)
	case domain.RRTypeNS: // 2
		data, next, err = decodeNSData(msg, off, end)
	case domain.RRTypeMD: // 3
		data, next, err = decodeMDData(msg, off, end)
	case domain.RRTypeMF: // 4
		data, next, err = decodeMFData(msg, off, end)
	case domain.RRTypeCNAME: // 5
		data, next, err = decodeCNAMEData(msg, off, end)
	case domain.RRTypeSOA: // 6
		data, next, err = decodeSOAData(msg, off, end)
	case domain.RRTypeMB: // 7
		data, next, err = decodeMBData(msg, off, end)
	case domain.RRTypeMG: // 8
		data, next, err = decodeMGData(msg, off, end)
	case domain.RRTypeMR: // 9
		data, next, err = decodeMRData(msg, off, end)
	case domain.RRTypeNULL: // 10
		data, next, err = decodeNULLData(msg, off, end)
	case domain.RRTypeWKS: // 11
		data, next, err = decodeWKSData(msg, off, end)
	case domain.RRTypePTR: // 12
		data, next, err = decodePTRData(msg, off, end)
	case domain.RRTypeHINFO: // 13
		data, next, err = decodeHINFOData(msg, off, end)
	case domain.RRTypeMINFO: // 14
		data, next, err = decodeMINFOData(msg, off, end)
	case domain.RRTypeMX: // 15
		data, next, err = decodeMXData(msg, off, end)
	case domain.RRTypeTXT: // 16
		data, next, err = decodeTXTData(msg, off, end)
	default:
		return nil, fmt.Errorf("record type %d: %w", t, ErrBadValue)
	}
	if err != nil {
		return nil, err
	}
	if next != end {
		return nil, fmt.Errorf("payload stopped %d bytes short of its declared length: %w", end-next, ErrLength)
	}
	return data, nil
}

// encodeRData serializes a record data payload to its wire form.
func encodeRData(data domain.RData) ([]byte, error) {
	switch d := data.(type) {
	case domain.AData: // 1
		return appendAData(nil, d)
	case domain.NSData: // 2
		return encodeName(d.NS)
	case domain.MDData: // 3
		return encodeName(d.Mail)
	case domain.MFData: // 4
		return encodeName(d.Mail)
	case domain.CNAMEData: // 5
		return encodeName(d.Target)
	case domain.SOAData: // 6
		return appendSOAData(nil, d)
	case domain.MBData: // 7
		return encodeName(d.Mailbox)
	case domain.MGData: // 8
		return encodeName(d.Mailbox)
	case domain.MRData: // 9
		return encodeName(d.NewName)
	case domain.NULLData: // 10
		return append([]byte(nil), d.Data...), nil
	case domain.WKSData: // 11
		return appendWKSData(nil, d)
	case domain.PTRData: // 12
		return encodeName(d.Target)
	case domain.HINFOData: // 13
		return appendHINFOData(nil, d)
	case domain.MINFOData: // 14
		return appendMINFOData(nil, d)
	case domain.MXData: // 15
		return appendMXData(nil, d)
	case domain.TXTData: // 16
		return appendTXTData(nil, d)
	default:
		return nil, fmt.Errorf("record data %T: %w", data, ErrBadValue)
	}
}

// decodeDataName decodes a domain name embedded in record data. The name's
// own bytes must stay inside the payload bounds even though compression
// pointers may target anywhere earlier in the message.
func decodeDataName(msg []byte, off, end int) (string, int, error) {
	name, next, err := decodeName(msg, off)
	if err != nil {
		return "", 0, err
	}
	if next > end {
		return "", 0, fmt.Errorf("name runs %d bytes past the payload: %w", next-end, ErrLength)
	}
	return name, next, nil
}
