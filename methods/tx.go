// Copyright 2025 The packetd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package methods

import "github.com/packetd/amqp091"

const classTx = amqp091.ClassTx

func init() {
	register(classTx, 10, "select", func() amqp091.Method { return &TxSelect{} })
	register(classTx, 11, "select-ok", func() amqp091.Method { return &TxSelectOk{} })
	register(classTx, 20, "commit", func() amqp091.Method { return &TxCommit{} })
	register(classTx, 21, "commit-ok", func() amqp091.Method { return &TxCommitOk{} })
	register(classTx, 30, "rollback", func() amqp091.Method { return &TxRollback{} })
	register(classTx, 31, "rollback-ok", func() amqp091.Method { return &TxRollbackOk{} })
}

// None of the tx.* methods carry arguments, only the class/method id
// prefix.

// TxSelect is tx.select (90,10): puts the channel in transactional mode.
type TxSelect struct{}

func (m *TxSelect) ClassID() uint16 { return classTx }
func (m *TxSelect) ID() uint16      { return 10 }
func (m *TxSelect) Name() string    { return "tx.select" }

func (m *TxSelect) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *TxSelect) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// TxSelectOk is tx.select-ok (90,11): confirms transactional mode.
type TxSelectOk struct{}

func (m *TxSelectOk) ClassID() uint16 { return classTx }
func (m *TxSelectOk) ID() uint16      { return 11 }
func (m *TxSelectOk) Name() string    { return "tx.select-ok" }

func (m *TxSelectOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *TxSelectOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// TxCommit is tx.commit (90,20): commits the current transaction.
type TxCommit struct{}

func (m *TxCommit) ClassID() uint16 { return classTx }
func (m *TxCommit) ID() uint16      { return 20 }
func (m *TxCommit) Name() string    { return "tx.commit" }

func (m *TxCommit) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *TxCommit) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// TxCommitOk is tx.commit-ok (90,21): confirms a commit.
type TxCommitOk struct{}

func (m *TxCommitOk) ClassID() uint16 { return classTx }
func (m *TxCommitOk) ID() uint16      { return 21 }
func (m *TxCommitOk) Name() string    { return "tx.commit-ok" }

func (m *TxCommitOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *TxCommitOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// TxRollback is tx.rollback (90,30): abandons the current transaction.
type TxRollback struct{}

func (m *TxRollback) ClassID() uint16 { return classTx }
func (m *TxRollback) ID() uint16      { return 30 }
func (m *TxRollback) Name() string    { return "tx.rollback" }

func (m *TxRollback) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *TxRollback) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}

// TxRollbackOk is tx.rollback-ok (90,31): confirms a rollback.
type TxRollbackOk struct{}

func (m *TxRollbackOk) ClassID() uint16 { return classTx }
func (m *TxRollbackOk) ID() uint16      { return 31 }
func (m *TxRollbackOk) Name() string    { return "tx.rollback-ok" }

func (m *TxRollbackOk) Decode(mf *amqp091.MethodFrame) error {
	_, err := argsReader(mf, m.Name(), m.ClassID(), m.ID())
	return err
}

func (m *TxRollbackOk) Encode() (amqp091.EncodedMethod, error) {
	return finish(amqp091.NewArgumentsWriter())
}
