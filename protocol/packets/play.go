package packets

import (
	ns "github.com/mwath/mcli/net_structures"
	"github.com/mwath/mcli/protocol"
)

// SpawnEntity announces a non-living, non-player entity in render distance.
type SpawnEntity struct {
	EntityID int32
	UUID     ns.UUID
	Type     int32
	X, Y, Z  float64
	Pitch    ns.Angle
	Yaw      ns.Angle
	Data     int32
}

func (*SpawnEntity) ID() int32                    { return 0x00 }
func (*SpawnEntity) State() protocol.State         { return protocol.Play }
func (*SpawnEntity) Direction() protocol.Direction { return protocol.Clientbound }

func (p *SpawnEntity) Read(r *protocol.Reader) error {
	var err error
	if p.EntityID, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.UUID, err = r.ReadUUID(); err != nil {
		return err
	}
	if p.Type, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = r.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = r.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = r.ReadDouble(); err != nil {
		return err
	}
	if p.Pitch, err = r.ReadAngle(); err != nil {
		return err
	}
	if p.Yaw, err = r.ReadAngle(); err != nil {
		return err
	}
	p.Data, err = r.ReadInt()
	return err
}

func (p *SpawnEntity) Write(w *protocol.Writer) error {
	if err := w.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := w.WriteUUID(p.UUID); err != nil {
		return err
	}
	if err := w.WriteVarInt(p.Type); err != nil {
		return err
	}
	if err := w.WriteDouble(p.X); err != nil {
		return err
	}
	if err := w.WriteDouble(p.Y); err != nil {
		return err
	}
	if err := w.WriteDouble(p.Z); err != nil {
		return err
	}
	if err := w.WriteAngle(p.Pitch); err != nil {
		return err
	}
	if err := w.WriteAngle(p.Yaw); err != nil {
		return err
	}
	return w.WriteInt(p.Data)
}

// SpawnPlayer announces a player entity in render distance. Its later state
// (equipment, metadata) arrives in separate packets not modeled here.
type SpawnPlayer struct {
	EntityID   int32
	PlayerUUID ns.UUID
	X, Y, Z    float64
	Yaw, Pitch ns.Angle
}

func (*SpawnPlayer) ID() int32                    { return 0x04 }
func (*SpawnPlayer) State() protocol.State         { return protocol.Play }
func (*SpawnPlayer) Direction() protocol.Direction { return protocol.Clientbound }

func (p *SpawnPlayer) Read(r *protocol.Reader) error {
	var err error
	if p.EntityID, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.PlayerUUID, err = r.ReadUUID(); err != nil {
		return err
	}
	if p.X, err = r.ReadDouble(); err != nil {
		return err
	}
	if p.Y, err = r.ReadDouble(); err != nil {
		return err
	}
	if p.Z, err = r.ReadDouble(); err != nil {
		return err
	}
	if p.Yaw, err = r.ReadAngle(); err != nil {
		return err
	}
	p.Pitch, err = r.ReadAngle()
	return err
}

func (p *SpawnPlayer) Write(w *protocol.Writer) error {
	if err := w.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := w.WriteUUID(p.PlayerUUID); err != nil {
		return err
	}
	if err := w.WriteDouble(p.X); err != nil {
		return err
	}
	if err := w.WriteDouble(p.Y); err != nil {
		return err
	}
	if err := w.WriteDouble(p.Z); err != nil {
		return err
	}
	if err := w.WriteAngle(p.Yaw); err != nil {
		return err
	}
	return w.WriteAngle(p.Pitch)
}

// JoinGame is the first Play-state packet, confirming the transition out of
// Login and carrying the dimension codec as NBT. Field layout targets
// protocol version 754 (1.16.4/1.16.5).
type JoinGame struct {
	EntityID            int32
	IsHardcore          bool
	Gamemode            byte
	PreviousGamemode    int8
	WorldNames          []string
	DimensionCodec      ns.NBT
	Dimension           ns.NBT
	WorldName           string
	HashedSeed          int64
	MaxPlayers          int32
	ViewDistance        int32
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	IsDebug             bool
	IsFlat              bool
}

func (*JoinGame) ID() int32                    { return 0x24 }
func (*JoinGame) State() protocol.State         { return protocol.Play }
func (*JoinGame) Direction() protocol.Direction { return protocol.Clientbound }

func (p *JoinGame) Read(r *protocol.Reader) error {
	var err error
	if p.EntityID, err = r.ReadInt(); err != nil {
		return err
	}
	if p.IsHardcore, err = r.ReadBool(); err != nil {
		return err
	}
	if p.Gamemode, err = r.ReadUByte(); err != nil {
		return err
	}
	prevGamemode, err := r.ReadByte()
	if err != nil {
		return err
	}
	p.PreviousGamemode = prevGamemode

	worldCount, err := r.ReadVarInt()
	if err != nil {
		return err
	}
	p.WorldNames = make([]string, 0, worldCount)
	for range worldCount {
		name, err := r.ReadIdentifier()
		if err != nil {
			return err
		}
		p.WorldNames = append(p.WorldNames, name)
	}

	if p.DimensionCodec, err = r.ReadNBT(); err != nil {
		return err
	}
	if p.Dimension, err = r.ReadNBT(); err != nil {
		return err
	}
	if p.WorldName, err = r.ReadIdentifier(); err != nil {
		return err
	}
	if p.HashedSeed, err = r.ReadLong(); err != nil {
		return err
	}
	if p.MaxPlayers, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.ViewDistance, err = r.ReadVarInt(); err != nil {
		return err
	}
	if p.ReducedDebugInfo, err = r.ReadBool(); err != nil {
		return err
	}
	if p.EnableRespawnScreen, err = r.ReadBool(); err != nil {
		return err
	}
	if p.IsDebug, err = r.ReadBool(); err != nil {
		return err
	}
	p.IsFlat, err = r.ReadBool()
	return err
}

func (p *JoinGame) Write(w *protocol.Writer) error {
	if err := w.WriteInt(p.EntityID); err != nil {
		return err
	}
	if err := w.WriteBool(p.IsHardcore); err != nil {
		return err
	}
	if err := w.WriteUByte(p.Gamemode); err != nil {
		return err
	}
	if err := w.WriteByte(p.PreviousGamemode); err != nil {
		return err
	}
	if err := w.WriteVarInt(int32(len(p.WorldNames))); err != nil {
		return err
	}
	for _, name := range p.WorldNames {
		if err := w.WriteIdentifier(name); err != nil {
			return err
		}
	}
	if err := w.WriteNBT(p.DimensionCodec); err != nil {
		return err
	}
	if err := w.WriteNBT(p.Dimension); err != nil {
		return err
	}
	if err := w.WriteIdentifier(p.WorldName); err != nil {
		return err
	}
	if err := w.WriteLong(p.HashedSeed); err != nil {
		return err
	}
	if err := w.WriteVarInt(p.MaxPlayers); err != nil {
		return err
	}
	if err := w.WriteVarInt(p.ViewDistance); err != nil {
		return err
	}
	if err := w.WriteBool(p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := w.WriteBool(p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := w.WriteBool(p.IsDebug); err != nil {
		return err
	}
	return w.WriteBool(p.IsFlat)
}
