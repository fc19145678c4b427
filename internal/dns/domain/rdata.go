package domain

import (
	"fmt"
	"net"
)

// RData is the type-tagged payload of a resource record. Exactly one
// implementation exists per RRType, so a record whose declared type does not
// match its payload is not representable once constructed through
// NewResourceRecord.
type RData interface {
	// RRType returns the resource record type this payload belongs to.
	RRType() RRType

	// Validate checks the payload's own invariants (name shapes, string
	// lengths, address widths).
	Validate() error
}

// validateAbsoluteName checks a domain name embedded in record data.
func validateAbsoluteName(field, name string) error {
	if err := ValidateName(name); err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	if !IsAbsoluteName(name) {
		return fmt.Errorf("%s %q must be absolute", field, name)
	}
	return nil
}

// validateCharString checks a character-string embedded in record data.
func validateCharString(field, s string) error {
	if len(s) > 255 {
		return fmt.Errorf("%s exceeds 255 bytes", field)
	}
	return nil
}

// AData holds the IPv4 address of an A record.
type AData struct {
	Addr net.IP
}

func (AData) RRType() RRType { return RRTypeA }

func (d AData) Validate() error {
	if d.Addr == nil || d.Addr.To4() == nil {
		return fmt.Errorf("A record address %v is not IPv4", d.Addr)
	}
	return nil
}

// NSData holds the name server of an NS record.
type NSData struct {
	NS string
}

func (NSData) RRType() RRType { return RRTypeNS }

func (d NSData) Validate() error {
	return validateAbsoluteName("NS name server", d.NS)
}

// MDData holds the mail destination host of an MD record (obsolete).
type MDData struct {
	Mail string
}

func (MDData) RRType() RRType { return RRTypeMD }

func (d MDData) Validate() error {
	return validateAbsoluteName("MD mail destination", d.Mail)
}

// MFData holds the mail forwarder host of an MF record (obsolete).
type MFData struct {
	Mail string
}

func (MFData) RRType() RRType { return RRTypeMF }

func (d MFData) Validate() error {
	return validateAbsoluteName("MF mail forwarder", d.Mail)
}

// CNAMEData holds the canonical name of a CNAME record.
type CNAMEData struct {
	Target string
}

func (CNAMEData) RRType() RRType { return RRTypeCNAME }

func (d CNAMEData) Validate() error {
	return validateAbsoluteName("CNAME target", d.Target)
}

// SOAData holds the start-of-authority fields of an SOA record.
type SOAData struct {
	MName   string // primary name server for the zone
	RName   string // mailbox of the person responsible for the zone
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (SOAData) RRType() RRType { return RRTypeSOA }

func (d SOAData) Validate() error {
	if err := validateAbsoluteName("SOA mname", d.MName); err != nil {
		return err
	}
	return validateAbsoluteName("SOA rname", d.RName)
}

// MBData holds the mailbox host of an MB record.
type MBData struct {
	Mailbox string
}

func (MBData) RRType() RRType { return RRTypeMB }

func (d MBData) Validate() error {
	return validateAbsoluteName("MB mailbox", d.Mailbox)
}

// MGData holds the mail group member of an MG record.
type MGData struct {
	Mailbox string
}

func (MGData) RRType() RRType { return RRTypeMG }

func (d MGData) Validate() error {
	return validateAbsoluteName("MG mailbox", d.Mailbox)
}

// MRData holds the renamed mailbox of an MR record.
type MRData struct {
	NewName string
}

func (MRData) RRType() RRType { return RRTypeMR }

func (d MRData) Validate() error {
	return validateAbsoluteName("MR new name", d.NewName)
}

// NULLData holds the opaque payload of a NULL record.
type NULLData struct {
	Data []byte
}

func (NULLData) RRType() RRType { return RRTypeNULL }

func (d NULLData) Validate() error {
	if len(d.Data) > 65535 {
		return fmt.Errorf("NULL record data exceeds 65535 bytes")
	}
	return nil
}

// WKSData holds the well-known-services description of a WKS record:
// an IPv4 address, an IP protocol number, and a service bitmap.
type WKSData struct {
	Addr     net.IP
	Protocol uint8
	Bitmap   []byte
}

func (WKSData) RRType() RRType { return RRTypeWKS }

func (d WKSData) Validate() error {
	if d.Addr == nil || d.Addr.To4() == nil {
		return fmt.Errorf("WKS record address %v is not IPv4", d.Addr)
	}
	return nil
}

// PTRData holds the target name of a PTR record.
type PTRData struct {
	Target string
}

func (PTRData) RRType() RRType { return RRTypePTR }

func (d PTRData) Validate() error {
	return validateAbsoluteName("PTR target", d.Target)
}

// HINFOData holds the host information strings of a HINFO record.
type HINFOData struct {
	CPU string
	OS  string
}

func (HINFOData) RRType() RRType { return RRTypeHINFO }

func (d HINFOData) Validate() error {
	if err := validateCharString("HINFO cpu", d.CPU); err != nil {
		return err
	}
	return validateCharString("HINFO os", d.OS)
}

// MINFOData holds the mailbox information names of a MINFO record.
type MINFOData struct {
	RMailbox string // mailbox responsible for the mailing list or mailbox
	EMailbox string // mailbox to receive error messages
}

func (MINFOData) RRType() RRType { return RRTypeMINFO }

func (d MINFOData) Validate() error {
	if err := validateAbsoluteName("MINFO rmailbox", d.RMailbox); err != nil {
		return err
	}
	return validateAbsoluteName("MINFO emailbox", d.EMailbox)
}

// MXData holds the preference and exchange host of an MX record.
type MXData struct {
	Preference uint16
	Exchange   string
}

func (MXData) RRType() RRType { return RRTypeMX }

func (d MXData) Validate() error {
	return validateAbsoluteName("MX exchange", d.Exchange)
}

// TXTData holds the character-strings of a TXT record.
type TXTData struct {
	Strings []string
}

func (TXTData) RRType() RRType { return RRTypeTXT }

func (d TXTData) Validate() error {
	for _, s := range d.Strings {
		if err := validateCharString("TXT segment", s); err != nil {
			return err
		}
	}
	return nil
}
