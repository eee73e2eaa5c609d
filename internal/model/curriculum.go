package model

// DefaultCurriculum 内置的 Git 入门闯关课程。
// 库表为空时由数据库初始化逻辑写入，作为静态教学内容使用，运行期不提供编辑接口。
func DefaultCurriculum() []QuizStep {
	return []QuizStep{
		{
			StepOrder: 0,
			Title:     "Step 0 — 课前准备 (.gitignore)",
			Content: "在作业目录下新建 git_study 项目文件夹。\n" +
				"进入项目目录后在终端输入 `git init`：\n\n" +
				"```bash\ncd git_study\ngit init\n```",
		},
		{
			StepOrder: 1,
			Title:     "Step 1 — 本地产生代码变更",
			Content: "新建 file.txt：\n\n`touch file`\n\n" +
				"在新文件里写入 \"initial text\"。这样本地就产生了一次代码变更。\n\n" +
				"输入 `git status` 后回答下面的问题。（`git status` 在整个练习中会反复用到。）",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step1-q1",
					Content:         "Working directory、Staging area、Repository 三个区域中，这次变更目前存在于哪里？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "Working directory。还没有 add 到 staging area，文件以 untracked 状态留在 working directory 中。",
					MaxScore:        5,
					Order:           1,
				},
			},
		},
		{
			StepOrder: 2,
			Title:     "Step 2 — add",
			Content:   "把 Step 1 中只存在于 working directory 的变更添加到 staging area。\n\n输入 `git status` 后回答下面的问题。",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step2-q1",
					Content:         "add 之后，staging area 和 repository 里各有什么？还是什么都没有？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "变更被放进了 staging area。因为还没有 commit，repository 里什么都没有。",
					MaxScore:        5,
					Order:           1,
				},
				{
					QuestionKey:     "step2-q2",
					Content:         "这次变更是 untracked 还是 tracked？（它开始被 git 追踪了吗？）",
					Kind:            QuestionKindShort,
					ReferenceAnswer: "tracked。add 产生了待提交内容，说明文件开始被 git 追踪，同时文件内容被复制进了 staging area。",
					MaxScore:        5,
					Order:           2,
				},
				{
					QuestionKey:     "step2-q3",
					Content:         "把 \"initial text\" 改成 \"initial change\" 之后，要把修改放进 staging area 还需要再 add 一次吗？还是因为文件已经 tracked 会自动进入 staging？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "需要再 add。文件被追踪不代表每次变更都会自动进入 staging area。",
					MaxScore:        5,
					Order:           3,
				},
			},
		},
		{
			StepOrder: 3,
			Title:     "Step 3 — commit",
			Content: "把 \"initial change\" 重新 add 进 staging area 并完成提交：\n\n" +
				"`git add file`\n`git commit -m \"initial change\"`\n\n输入 `git status` 后回答下面的问题。",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step3-q1",
					Content:         "commit 之后，staging area 和 repository 里各有什么？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "staging area 被清空，repository 里保存了这次提交。commit 把 staging area 的快照存入 repository。",
					MaxScore:        5,
					Order:           1,
				},
				{
					QuestionKey:     "step3-q2",
					Content:         "所以 commit 保存的是 working directory 还是 staging area？",
					Kind:            QuestionKindShort,
					ReferenceAnswer: "保存的是 staging area。",
					MaxScore:        5,
					Order:           2,
				},
			},
		},
		{
			StepOrder: 4,
			Title:     "Step 4 — restore",
			Content: "Step 3 里已经提交了 \"initial change\"。现在把内容改成 \"next change\"，先不要 add。\n" +
				"想了想觉得 next 这个词不太合适，希望撤销修改，把 working directory 的内容改回 initial。",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step4-q1",
					Content:         "这时应该用什么命令？以及为什么是 restore 而不是 reset？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "用 git restore file。因为只是撤销 working directory 中的变更。",
					MaxScore:        5,
					Order:           1,
				},
				{
					QuestionKey:     "step4-q2",
					Content:         "restore 改变的是哪个区域？",
					Kind:            QuestionKindShort,
					ReferenceAnswer: "working directory。",
					MaxScore:        5,
					Order:           2,
				},
				{
					QuestionKey:     "step4-q3",
					Content:         "如果先 git add，再把变更从 staging area 撤下来但保持 tracked 状态，应该用什么命令？哪个区域被改变了？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "git restore --staged file。把变更从 staging area 撤下但保持 tracked，working directory 中的修改保留。",
					MaxScore:        10,
					Order:           3,
				},
				{
					QuestionKey:     "step4-q4",
					Content:         "如果要把文件变回 untracked 状态，应该用什么命令？哪个区域被改变了？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "git rm --cached file。把变更从 staging area 撤下并变为 untracked，working directory 中的修改保留。",
					MaxScore:        10,
					Order:           4,
				},
			},
		},
		{
			StepOrder: 5,
			Title:     "Step 5 — reset（撤销提交）",
			Content: "因为 Step 4 做了 restore，目前只有 Step 3 开头提交的那一次 commit。\n" +
				"再想想又后悔了，想把第一次提交撤销掉。",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step5-q1",
					Content:         "为什么 reset（--soft、--mixed、--hard）会报错？（提示：这三个命令都会把 HEAD 移动到最新提交的父提交上）",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "reset 要把 HEAD 移动到上一次提交，但目前只有一次提交，最新提交没有父提交，所以无法 reset。",
					MaxScore:        5,
					Order:           1,
				},
				{
					QuestionKey:     "step5-q2",
					Content:         "又提交了一次之后执行了 git reset --hard HEAD~1。为什么这里用 reset 而不是 restore？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "restore 是按文件撤销 working directory 或 staging area 的变更，reset 是按 HEAD（提交）为单位撤销。",
					MaxScore:        5,
					Order:           2,
				},
				{
					QuestionKey:     "step5-q3",
					Content:         "soft、mixed、hard 三者的区别是什么？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "soft：只移动分支指针，working directory 和 staging area 都不变。mixed：移动分支指针并重置 staging area，working directory 不变（常用于修改最近一次提交）。hard：分支指针、staging area、working directory 全部重置。",
					MaxScore:        5,
					Order:           3,
				},
			},
		},
		{
			StepOrder: 6,
			Title:     "Step 6 — reflog",
			Content: "Step 5 里学习了 reset。回头再想，还是 \"next change\" 最好。\n" +
				"但分支范围已经收缩，HEAD 不再指向 \"next change\" 这次提交。\n还能回到过去 HEAD 指向过的那次提交吗？",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step6-q1",
					Content:         "git log 和 git reflog 的区别是什么？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "git log 展示当前分支的提交历史，git reflog 展示历代 HEAD 的移动记录。",
					MaxScore:        5,
					Order:           1,
				},
				{
					QuestionKey:     "step6-q2",
					Content:         "要让 \"next change\" 重新成为最新提交，应该怎么做？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "用 Step 5 学的 reset 回到那次提交：git reset --hard <提交哈希>。",
					MaxScore:        5,
					Order:           2,
				},
			},
		},
		{
			StepOrder: 7,
			Title:     "Step 7 — Fast-Forward merge 与 3-way merge",
			Content: "到目前为止所有操作都在 master 分支上。现在创建一个新分支：\n\n" +
				"`git checkout -b dev`\n\n输入 `git log` 后回答下面的问题。",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step7-q1",
					Content:         "新分支创建后，历史提交的哈希和 master 上的哈希是一样的还是不同的？",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "一样。创建 dev 之前只有 master 指向这些提交，现在变成 master 和 dev 两个分支同时指向它们。",
					MaxScore:        5,
					Order:           1,
				},
				{
					QuestionKey:     "step7-q2",
					Content:         "在 dev 上新建一次提交后切回 master 并 merge，两个分支之间会产生冲突吗？",
					Kind:            QuestionKindShort,
					ReferenceAnswer: "不会。只是 master 分支的范围向前延伸（Fast-Forward merge）。",
					MaxScore:        5,
					Order:           2,
				},
				{
					QuestionKey:     "step7-q3",
					Content:         "在 master 上提交 \"collision from master\"、在 dev 上提交 \"collision from dev\" 之后再 merge，会产生冲突吗？",
					Kind:            QuestionKindShort,
					ReferenceAnswer: "会。同一文件的同一部分被不同方式修改（3-way merge）。",
					MaxScore:        5,
					Order:           3,
				},
			},
		},
		{
			StepOrder: 8,
			Title:     "Step 8 — revert（线上事故演练）",
			Content: "刚才合并了 dev 分支。但 \"collision\" 这个词有致命 bug，绝不能留在主分支里。\n\n" +
				"假设你正在和同事协作：提交历史已经 push 到远端，而且同事们都已经 pull 下去了。",
			Questions: []QuizQuestion{
				{
					QuestionKey:     "step8-q1",
					Content:         "reset 精灵和 revert 精灵同时在耳边低语。找出其中隐藏的恶魔，并说明理由。",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "恶魔是 reset。reset 会把分支指针移回过去，改写已经 push 的历史，与同事的本地历史冲突，只能 force push，协作随之陷入混乱。reset 是在\"抹掉\"历史。",
					MaxScore:        10,
					Order:           1,
				},
				{
					QuestionKey:     "step8-q2",
					Content:         "恶魔已经找到了，给出应对方案。",
					Kind:            QuestionKindLong,
					ReferenceAnswer: "选择 revert。保留既有提交，追加一个\"撤销提交\"。历史被保留，协作安全。revert 不删除记录，而是在记录之上回退。",
					MaxScore:        10,
					Order:           2,
				},
			},
		},
	}
}
