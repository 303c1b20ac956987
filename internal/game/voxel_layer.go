package game

import (
	"github.com/annel0/hexvoxel/internal/entity"
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/logging"
	"github.com/annel0/hexvoxel/internal/physics"
	"github.com/annel0/hexvoxel/internal/vec"
	"github.com/annel0/hexvoxel/internal/world"
)

// voxelState - слой воксельного чанка одной клетки карты
type voxelState struct {
	player *entity.Entity
}

func (v *voxelState) Layer() Layer { return LayerVoxel }

func (v *voxelState) Enter(s *Session, event world.LayerTransition) {
	enter, ok := event.(world.ToVoxelEvent)
	if !ok {
		enter = world.ToVoxelEvent{Coord: hex.Origin, Direction: hex.Up, Terrain: s.hexMap.Terrain(hex.Origin)}
	}

	world.Fill(s.chunk, enter.Coord, enter.Terrain)
	s.chunkActive = true
	s.metrics.chunkFilled(enter.Terrain)
	logging.LogChunkFill(enter.Coord.Q, enter.Coord.R, enter.Terrain.String(), s.chunk.SolidCount())

	v.player = s.entities.Spawn(entity.KindVoxelPlayer, entity.ScopeVoxel)
	v.player.Coord = enter.Coord
	v.player.Position = physics.EntryPosition(enter.Direction)
	v.player.Collider = physics.NewBoxCollider(1, 1)
	v.player.Inventory = s.inventory
}

func (v *voxelState) Update(s *Session, dt float64, input Input) {
	if input.Move != (vec.Vec2Float{}) {
		dir := input.Move.Normalized().Mul(s.opts.VoxelMoveSpeed * dt)
		delta := vec.Vec3Float{X: dir.X, Z: dir.Y}
		v.player.Position = physics.MoveAxes(v.player.Position, delta, v.player.Collider, s.chunk)
	}

	if v.player.Jump != nil {
		v.player.Position = v.player.Jump.Step(v.player.Position, dt, v.player.Collider, s.chunk)
		if !v.player.Jump.Active() {
			v.player.Jump = nil
		}
	}

	v.player.Position = physics.ApplyGravity(v.player.Position, dt, s.opts.Gravity, s.chunk)

	if input.Jump && v.player.Jump == nil {
		if jump, ok := physics.StartJump(v.player.Position, s.chunk); ok {
			v.player.Jump = jump
		}
	}

	if d, out := physics.ExitDirection(v.player.Position); out {
		s.Emit(world.ToHexEvent{Coord: s.chunk.Coord, Direction: d})
		return
	}
	if input.Back {
		s.Emit(world.ToHexEvent{Coord: s.chunk.Coord, Direction: hex.Up})
	}
}

func (v *voxelState) Exit(s *Session) {
	s.entities.DespawnScope(entity.ScopeVoxel)
	s.chunk.Reset(hex.Origin, world.TerrainEmpty)
	s.chunkActive = false
	v.player = nil
}
