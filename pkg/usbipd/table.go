package usbipd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blacktop/wslcam/internal/utils"
)

// Column labels of the `usbipd wsl list` header.
const (
	LabelVIDPID = "VID:PID"
	LabelDevice = "DEVICE"
	LabelState  = "STATE"
)

// StateNotAttached is the STATE of a port that is not attached to any distribution.
const StateNotAttached = "Not attached"

// ErrLabelNotFound is returned when the listing header lacks one of the column labels.
var ErrLabelNotFound = errors.New("label not found")

// Port is one row of the `usbipd wsl list` table.
type Port struct {
	BusID  string `json:"busid"`
	VIDPID string `json:"vid_pid,omitempty"`
	Device string `json:"device"`
	State  string `json:"state"`
}

// Attached returns true if the port is attached (or otherwise in use) somewhere.
func (p Port) Attached() bool {
	return p.State != StateNotAttached
}

// IDs returns the vendor and product id of the port's device.
func (p Port) IDs() (uint16, uint16, error) {
	vid, pid, ok := strings.Cut(p.VIDPID, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid VID:PID %q", p.VIDPID)
	}
	v, err := strconv.ParseUint(vid, 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid vendor id %q: %w", vid, err)
	}
	d, err := strconv.ParseUint(pid, 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid product id %q: %w", pid, err)
	}
	return uint16(v), uint16(d), nil
}

func (p Port) String() string {
	return fmt.Sprintf("%s %s %s (%s)", p.BusID, p.VIDPID, p.Device, p.State)
}

// PortTable maps bus ids to ports, remembering the order they were listed in.
type PortTable struct {
	order []string
	ports map[string]Port
}

// NewPortTable returns an empty table.
func NewPortTable() *PortTable {
	return &PortTable{ports: make(map[string]Port)}
}

// Add inserts or replaces a port. A replaced port keeps its original position.
func (t *PortTable) Add(p Port) {
	if _, ok := t.ports[p.BusID]; !ok {
		t.order = append(t.order, p.BusID)
	}
	t.ports[p.BusID] = p
}

// Get returns the port with the given bus id.
func (t *PortTable) Get(busID string) (Port, bool) {
	p, ok := t.ports[busID]
	return p, ok
}

// Has returns true if busID is a key of the table.
func (t *PortTable) Has(busID string) bool {
	_, ok := t.ports[busID]
	return ok
}

// BusIDs returns the bus ids in listing order.
func (t *PortTable) BusIDs() []string {
	return append([]string(nil), t.order...)
}

// Ports returns the ports in listing order.
func (t *PortTable) Ports() []Port {
	out := make([]Port, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.ports[id])
	}
	return out
}

// Len returns the number of ports.
func (t *PortTable) Len() int {
	return len(t.order)
}

// ParseList parses the fixed-width table printed by `usbipd wsl list`.
//
// Column offsets come from the header line and are reused for every row, so
// rows that are not aligned with the header are sliced wrongly. Offsets are
// in characters, not bytes, to survive non-ASCII device names.
func ParseList(output string) (*PortTable, error) {
	header, rows, _ := strings.Cut(output, "\n")
	head := []rune(strings.TrimRight(header, "\r"))

	busidEnd, err := labelIndex(head, LabelVIDPID)
	if err != nil {
		return nil, err
	}
	deviceStart, err := labelIndex(head, LabelDevice)
	if err != nil {
		return nil, err
	}
	deviceEnd, err := labelIndex(head, LabelState)
	if err != nil {
		return nil, err
	}

	table := NewPortTable()
	for _, line := range strings.Split(rows, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := []rune(line)
		table.Add(Port{
			BusID:  column(row, 0, busidEnd),
			VIDPID: column(row, busidEnd, deviceStart),
			Device: column(row, deviceStart, deviceEnd),
			State:  column(row, deviceEnd, len(row)),
		})
	}

	return table, nil
}

func labelIndex(header []rune, label string) (int, error) {
	lbl := []rune(label)
	for i := 0; i+len(lbl) <= len(header); i++ {
		if string(header[i:i+len(lbl)]) == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLabelNotFound, label)
}

// column slices row[lo:hi] clamped to the row length.
func column(row []rune, lo, hi int) string {
	if hi > len(row) {
		hi = len(row)
	}
	if lo >= hi {
		return ""
	}
	return strings.TrimSpace(string(row[lo:hi]))
}

// FindCamera returns the bus id of the first port (in listing order) whose
// device name contains one of names, ignoring case.
func FindCamera(t *PortTable, names []string) (string, bool) {
	for _, p := range t.Ports() {
		if utils.StrContainsStrSliceItem(p.Device, names) {
			return p.BusID, true
		}
	}
	return "", false
}
